package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rifasve/rifas/internal/history"
	"github.com/rifasve/rifas/internal/ticket"
)

// pgUniqueViolation is the Postgres error code raised when two sessions
// race for the same (sorteo_id, numero) pair.
const pgUniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTicketColumns = `
	b.id, b.sorteo_id, b.numero, b.estado, b.precio, b.abonado,
	b.cliente_id, c.codigo, c.nombre_completo, c.telefono,
	b.asignado_en, b.actualizado_en
`

// scanTicket reads a ticket row joined with its owner.
func scanTicket(s scanner) (*ticket.Ticket, error) {
	var t ticket.Ticket

	var statusStr string

	var owner ticket.Owner

	if err := s.Scan(
		&t.ID, &t.RaffleID, &t.Number, &statusStr, &t.Price, &t.AmountPaid,
		&t.CustomerID, &owner.Code, &owner.FullName, &owner.Phone,
		&t.AssignedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Status = ticket.Status(statusStr)
	owner.ID = t.CustomerID
	t.Owner = &owner

	return &t, nil
}

const insertHistoryQuery = `
	INSERT INTO historial (sorteo_id, actor, accion, detalle, monto, creado_en)
	VALUES ($1, $2, $3, $4, $5, NOW())
`

func (s *Store) CreateTicket(ctx context.Context, t *ticket.Ticket, entry *history.Entry) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO boletos (sorteo_id, numero, estado, precio, abonado, cliente_id, asignado_en)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, asignado_en
	`

	err = dbTx.QueryRowContext(ctx, query,
		t.RaffleID,
		t.Number,
		t.Status,
		t.Price,
		t.AmountPaid,
		t.CustomerID,
	).Scan(&t.ID, &t.AssignedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ticket.ErrConflict
		}

		return fmt.Errorf("creating ticket: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, insertHistoryQuery,
		entry.RaffleID, entry.Actor, entry.Action, entry.Detail, entry.Amount,
	); err != nil {
		return fmt.Errorf("recording history: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTicket(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	query := `SELECT ` + selectTicketColumns + `
		FROM boletos b
		JOIN clientes c ON b.cliente_id = c.id
		WHERE b.id = $1`

	t, err := scanTicket(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrNotFound
		}

		return nil, fmt.Errorf("getting ticket: %w", err)
	}

	return t, nil
}

func (s *Store) GetTicketByNumber(ctx context.Context, raffleID uuid.UUID, number int) (*ticket.Ticket, error) {
	query := `SELECT ` + selectTicketColumns + `
		FROM boletos b
		JOIN clientes c ON b.cliente_id = c.id
		WHERE b.sorteo_id = $1 AND b.numero = $2`

	t, err := scanTicket(s.db.QueryRowContext(ctx, query, raffleID, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrNotFound
		}

		return nil, fmt.Errorf("getting ticket by number: %w", err)
	}

	return t, nil
}

func (s *Store) UpdateTicket(ctx context.Context, t *ticket.Ticket, entry *history.Entry) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE boletos
		SET estado = $1, abonado = $2, actualizado_en = NOW()
		WHERE id = $3
	`

	res, err := dbTx.ExecContext(ctx, query, t.Status, t.AmountPaid, t.ID)
	if err != nil {
		return fmt.Errorf("updating ticket: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ticket.ErrNotFound
	}

	if _, err := dbTx.ExecContext(ctx, insertHistoryQuery,
		entry.RaffleID, entry.Actor, entry.Action, entry.Detail, entry.Amount,
	); err != nil {
		return fmt.Errorf("recording history: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTicket(ctx context.Context, id uuid.UUID, entry *history.Entry) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx, `DELETE FROM boletos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting ticket: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ticket.ErrNotFound
	}

	if _, err := dbTx.ExecContext(ctx, insertHistoryQuery,
		entry.RaffleID, entry.Actor, entry.Action, entry.Detail, entry.Amount,
	); err != nil {
		return fmt.Errorf("recording history: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListTickets(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, error) {
	query := `SELECT ` + selectTicketColumns + `
		FROM boletos b
		JOIN clientes c ON b.cliente_id = c.id
		WHERE b.sorteo_id = $1`

	args := []any{filter.RaffleID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND b.estado = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND b.cliente_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	query += " ORDER BY b.numero ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*ticket.Ticket

	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ticket: %w", err)
		}

		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ticket rows: %w", err)
	}

	return tickets, nil
}

func (s *Store) Occupancy(ctx context.Context, raffleID uuid.UUID) (map[int]ticket.Status, error) {
	query := `SELECT numero, estado FROM boletos WHERE sorteo_id = $1`

	rows, err := s.db.QueryContext(ctx, query, raffleID)
	if err != nil {
		return nil, fmt.Errorf("reading occupancy: %w", err)
	}
	defer rows.Close()

	occupancy := make(map[int]ticket.Status)

	for rows.Next() {
		var number int

		var statusStr string

		if err := rows.Scan(&number, &statusStr); err != nil {
			return nil, fmt.Errorf("scanning occupancy row: %w", err)
		}

		occupancy[number] = ticket.Status(statusStr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating occupancy rows: %w", err)
	}

	return occupancy, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
