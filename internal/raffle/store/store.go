package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rifasve/rifas/internal/raffle"
)

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

const selectRaffleColumns = `
	id, nombre, precio_boleto, fecha_sorteo, hora_sorteo, capacidad,
	premio_1, premio_2, premio_3, premio_4, premio_5, creado_en
`

func scanRaffle(s scanner) (*raffle.Raffle, error) {
	var r raffle.Raffle

	prizes := make([]sql.NullString, raffle.MaxPrizes)

	if err := s.Scan(
		&r.ID, &r.Name, &r.TicketPrice, &r.DrawDate, &r.DrawTime, &r.Capacity,
		&prizes[0], &prizes[1], &prizes[2], &prizes[3], &prizes[4],
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}

	for i, p := range prizes {
		r.Prizes[i] = p.String
	}

	return &r, nil
}

func (s *Store) CreateRaffle(ctx context.Context, r *raffle.Raffle) error {
	query := `
		INSERT INTO sorteos (nombre, precio_boleto, fecha_sorteo, hora_sorteo, capacidad,
			premio_1, premio_2, premio_3, premio_4, premio_5, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, creado_en
	`

	err := s.db.QueryRowContext(ctx, query,
		r.Name,
		r.TicketPrice,
		r.DrawDate,
		r.DrawTime,
		r.Capacity,
		nullable(r.Prizes[0]),
		nullable(r.Prizes[1]),
		nullable(r.Prizes[2]),
		nullable(r.Prizes[3]),
		nullable(r.Prizes[4]),
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating raffle: %w", err)
	}

	return nil
}

func (s *Store) GetRaffle(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	query := `SELECT ` + selectRaffleColumns + ` FROM sorteos WHERE id = $1`

	r, err := scanRaffle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, raffle.ErrNotFound
		}

		return nil, fmt.Errorf("getting raffle: %w", err)
	}

	return r, nil
}

func (s *Store) ListRaffles(ctx context.Context) ([]*raffle.Raffle, error) {
	query := `SELECT ` + selectRaffleColumns + ` FROM sorteos ORDER BY fecha_sorteo DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing raffles: %w", err)
	}
	defer rows.Close()

	var raffles []*raffle.Raffle

	for rows.Next() {
		r, err := scanRaffle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning raffle: %w", err)
		}

		raffles = append(raffles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating raffle rows: %w", err)
	}

	return raffles, nil
}

// GetCompany reads the business identity keys from the configuracion
// table. Missing keys come back as empty strings.
func (s *Store) GetCompany(ctx context.Context) (*raffle.Company, error) {
	query := `
		SELECT clave, valor
		FROM configuracion
		WHERE clave IN ('empresa_nombre', 'empresa_rif', 'empresa_telefono')
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading company settings: %w", err)
	}
	defer rows.Close()

	var c raffle.Company

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}

		switch key {
		case "empresa_nombre":
			c.Name = value
		case "empresa_rif":
			c.TaxID = value
		case "empresa_telefono":
			c.Phone = value
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settings: %w", err)
	}

	return &c, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
