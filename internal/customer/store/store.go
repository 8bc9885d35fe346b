package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rifasve/rifas/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCustomerColumns = `
	id, codigo, nombre_completo, cedula, telefono, direccion, creado_en
`

func scanCustomer(s scanner) (*customer.Customer, error) {
	var c customer.Customer

	if err := s.Scan(
		&c.ID, &c.Code, &c.FullName, &c.NationalID, &c.Phone, &c.Address, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO clientes (codigo, nombre_completo, cedula, telefono, direccion, creado_en)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, creado_en
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Code,
		c.FullName,
		c.NationalID,
		c.Phone,
		c.Address,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM clientes WHERE id = $1`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return c, nil
}

func (s *Store) GetCustomerByCode(ctx context.Context, code string) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM clientes WHERE codigo = $1`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer by code: %w", err)
	}

	return c, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE clientes
		SET nombre_completo = $1, cedula = $2, telefono = $3, direccion = $4
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		c.FullName,
		c.NationalID,
		c.Phone,
		c.Address,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	return nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM clientes ORDER BY nombre_completo ASC`

	return s.queryCustomers(ctx, query)
}

func (s *Store) SearchCustomers(ctx context.Context, q string) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM clientes
		WHERE nombre_completo ILIKE $1 OR codigo ILIKE $1 OR telefono ILIKE $1 OR cedula ILIKE $1
		ORDER BY nombre_completo ASC
		LIMIT 20`

	return s.queryCustomers(ctx, query, "%"+q+"%")
}

func (s *Store) queryCustomers(ctx context.Context, query string, args ...any) ([]*customer.Customer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}
