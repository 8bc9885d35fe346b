package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rifasve/rifas/internal/history"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListEntries(ctx context.Context, raffleID uuid.UUID) ([]*history.Entry, error) {
	query := `
		SELECT id, sorteo_id, actor, accion, detalle, monto, creado_en
		FROM historial
		WHERE sorteo_id = $1
		ORDER BY creado_en ASC
	`

	rows, err := s.db.QueryContext(ctx, query, raffleID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []*history.Entry

	for rows.Next() {
		var e history.Entry
		if err := rows.Scan(&e.ID, &e.RaffleID, &e.Actor, &e.Action, &e.Detail, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}

	return entries, nil
}
