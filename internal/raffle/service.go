package raffle

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=raffle
type Repository interface {
	CreateRaffle(ctx context.Context, r *Raffle) error
	GetRaffle(ctx context.Context, id uuid.UUID) (*Raffle, error)
	ListRaffles(ctx context.Context) ([]*Raffle, error)
	GetCompany(ctx context.Context) (*Company, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	TicketPrice decimal.Decimal
	DrawDate    time.Time
	DrawTime    string
	Capacity    int
	Prizes      [MaxPrizes]string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Raffle, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, &ValidationError{Field: "nombre", Reason: "el nombre es obligatorio"}
	}

	if !params.TicketPrice.IsPositive() {
		return nil, &ValidationError{Field: "precio_boleto", Reason: "el precio debe ser mayor que cero"}
	}

	if !ValidCapacity(params.Capacity) {
		return nil, ErrUnsupportedCapacity
	}

	r := &Raffle{
		Name:        strings.TrimSpace(params.Name),
		TicketPrice: params.TicketPrice,
		DrawDate:    params.DrawDate,
		DrawTime:    params.DrawTime,
		Capacity:    params.Capacity,
		Prizes:      params.Prizes,
	}
	if err := s.repo.CreateRaffle(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Raffle, error) {
	r, err := s.repo.GetRaffle(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ValidCapacity(r.Capacity) {
		return nil, ErrUnsupportedCapacity
	}

	return r, nil
}

func (s *Service) List(ctx context.Context) ([]*Raffle, error) {
	return s.repo.ListRaffles(ctx)
}

func (s *Service) Company(ctx context.Context) (*Company, error) {
	return s.repo.GetCompany(ctx)
}

// ValidationError reports a rejected raffle attribute.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
