package ticket

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rifasve/rifas/internal/history"
	"github.com/rifasve/rifas/internal/raffle"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ticket
type Repository interface {
	// CreateTicket inserts the ticket and its audit entry in one
	// database transaction. It returns ErrConflict when the raffle
	// number is already taken.
	CreateTicket(ctx context.Context, t *Ticket, entry *history.Entry) error
	GetTicket(ctx context.Context, id uuid.UUID) (*Ticket, error)
	GetTicketByNumber(ctx context.Context, raffleID uuid.UUID, number int) (*Ticket, error)
	// UpdateTicket persists amount/status and the audit entry atomically.
	UpdateTicket(ctx context.Context, t *Ticket, entry *history.Entry) error
	// DeleteTicket removes the row (freeing the number) and records the
	// audit entry atomically.
	DeleteTicket(ctx context.Context, id uuid.UUID, entry *history.Entry) error
	ListTickets(ctx context.Context, filter ListFilter) ([]*Ticket, error)
	Occupancy(ctx context.Context, raffleID uuid.UUID) (map[int]Status, error)
}

type Service struct {
	repo    Repository
	raffles *raffle.Service
}

func NewService(repo Repository, raffles *raffle.Service) *Service {
	return &Service{repo: repo, raffles: raffles}
}

type ListFilter struct {
	RaffleID   uuid.UUID
	Status     *Status
	CustomerID *uuid.UUID
}

type AssignParams struct {
	RaffleID       uuid.UUID
	Number         int
	CustomerID     uuid.UUID
	InitialPayment decimal.Decimal
	Actor          string
}

// Assign creates the ticket row for a free number. The derived status
// follows the initial payment: zero reserves, a partial amount leaves it
// partially paid, the full price pays it outright.
func (s *Service) Assign(ctx context.Context, params AssignParams) (*Ticket, error) {
	rf, err := s.raffles.Get(ctx, params.RaffleID)
	if err != nil {
		return nil, err
	}

	if params.Number < 0 || params.Number >= rf.Capacity {
		return nil, &ValidationError{
			Field:  "numero",
			Reason: fmt.Sprintf("debe estar entre 0 y %d", rf.Capacity-1),
		}
	}

	if params.InitialPayment.IsNegative() {
		return nil, &ValidationError{Field: "abono", Reason: "no puede ser negativo"}
	}

	if params.InitialPayment.GreaterThan(rf.TicketPrice) {
		return nil, &ValidationError{Field: "abono", Reason: "excede el precio del boleto"}
	}

	t := &Ticket{
		RaffleID:   params.RaffleID,
		Number:     params.Number,
		Status:     DeriveStatus(rf.TicketPrice, params.InitialPayment),
		Price:      rf.TicketPrice,
		AmountPaid: params.InitialPayment,
		CustomerID: params.CustomerID,
	}

	entry := &history.Entry{
		RaffleID: params.RaffleID,
		Actor:    params.Actor,
		Action:   history.ActionAssign,
		Detail:   fmt.Sprintf("boleto %s asignado", raffle.FormatNumber(params.Number, rf.Capacity)),
		Amount:   params.InitialPayment,
	}

	if err := s.repo.CreateTicket(ctx, t, entry); err != nil {
		return nil, err
	}

	return t, nil
}

// AddPayment applies an abono to a ticket's balance. Amounts that are
// zero, negative, or above the outstanding balance are rejected here,
// not in the UI.
func (s *Service) AddPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, actor string) (*Ticket, error) {
	if !amount.IsPositive() {
		return nil, &ValidationError{Field: "monto", Reason: "debe ser mayor que cero"}
	}

	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	if amount.GreaterThan(t.Balance()) {
		return nil, &ValidationError{Field: "monto", Reason: "excede el saldo pendiente"}
	}

	rf, err := s.raffles.Get(ctx, t.RaffleID)
	if err != nil {
		return nil, err
	}

	t.AmountPaid = t.AmountPaid.Add(amount)
	t.Status = DeriveStatus(t.Price, t.AmountPaid)

	entry := &history.Entry{
		RaffleID: t.RaffleID,
		Actor:    actor,
		Action:   history.ActionPayment,
		Detail:   fmt.Sprintf("abono al boleto %s", raffle.FormatNumber(t.Number, rf.Capacity)),
		Amount:   amount,
	}

	if err := s.repo.UpdateTicket(ctx, t, entry); err != nil {
		return nil, err
	}

	return t, nil
}

// MarkPaid settles the ticket unconditionally: amount paid becomes the
// price, whatever was recorded before. Calling it twice is a no-op.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID, actor string) (*Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	rf, err := s.raffles.Get(ctx, t.RaffleID)
	if err != nil {
		return nil, err
	}

	t.AmountPaid = t.Price
	t.Status = DeriveStatus(t.Price, t.AmountPaid)

	entry := &history.Entry{
		RaffleID: t.RaffleID,
		Actor:    actor,
		Action:   history.ActionMarkPaid,
		Detail:   fmt.Sprintf("boleto %s marcado pagado", raffle.FormatNumber(t.Number, rf.Capacity)),
		Amount:   t.Price,
	}

	if err := s.repo.UpdateTicket(ctx, t, entry); err != nil {
		return nil, err
	}

	return t, nil
}

// RevertToReserved zeroes the recorded payments and puts the ticket back
// to apartado. The previous amounts survive only in the audit log.
func (s *Service) RevertToReserved(ctx context.Context, id uuid.UUID, actor string) (*Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	rf, err := s.raffles.Get(ctx, t.RaffleID)
	if err != nil {
		return nil, err
	}

	reverted := t.AmountPaid
	t.AmountPaid = decimal.Zero
	t.Status = DeriveStatus(t.Price, t.AmountPaid)

	entry := &history.Entry{
		RaffleID: t.RaffleID,
		Actor:    actor,
		Action:   history.ActionRevert,
		Detail:   fmt.Sprintf("boleto %s revertido a apartado", raffle.FormatNumber(t.Number, rf.Capacity)),
		Amount:   reverted,
	}

	if err := s.repo.UpdateTicket(ctx, t, entry); err != nil {
		return nil, err
	}

	return t, nil
}

// Release deletes the ticket row, returning the number to the pool.
func (s *Service) Release(ctx context.Context, id uuid.UUID, actor string) error {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return err
	}

	rf, err := s.raffles.Get(ctx, t.RaffleID)
	if err != nil {
		return err
	}

	entry := &history.Entry{
		RaffleID: t.RaffleID,
		Actor:    actor,
		Action:   history.ActionRelease,
		Detail:   fmt.Sprintf("boleto %s liberado", raffle.FormatNumber(t.Number, rf.Capacity)),
		Amount:   t.AmountPaid,
	}

	return s.repo.DeleteTicket(ctx, id, entry)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	return s.repo.GetTicket(ctx, id)
}

func (s *Service) GetByNumber(ctx context.Context, raffleID uuid.UUID, number int) (*Ticket, error) {
	return s.repo.GetTicketByNumber(ctx, raffleID, number)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Ticket, error) {
	return s.repo.ListTickets(ctx, filter)
}

// Occupancy returns number -> status for every assigned ticket of a
// raffle. Numbers absent from the map are available.
func (s *Service) Occupancy(ctx context.Context, raffleID uuid.UUID) (map[int]Status, error) {
	return s.repo.Occupancy(ctx, raffleID)
}
