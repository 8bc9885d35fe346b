package ticket

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

type ticketResponse struct {
	ID         uuid.UUID       `json:"id"`
	RaffleID   uuid.UUID       `json:"raffle_id"`
	Number     int             `json:"number"`
	Label      string          `json:"label"`
	Status     ticket.Status   `json:"status"`
	Price      decimal.Decimal `json:"price"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Balance    decimal.Decimal `json:"balance"`
	Customer   *ownerResponse  `json:"customer,omitempty"`
	AssignedAt time.Time       `json:"assigned_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

type ownerResponse struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
}

func toResponse(t *ticket.Ticket, capacity int) ticketResponse {
	resp := ticketResponse{
		ID:         t.ID,
		RaffleID:   t.RaffleID,
		Number:     t.Number,
		Label:      raffle.FormatNumber(t.Number, capacity),
		Status:     t.Status,
		Price:      t.Price,
		AmountPaid: t.AmountPaid,
		Balance:    t.Balance(),
		AssignedAt: t.AssignedAt,
		UpdatedAt:  t.UpdatedAt,
	}

	if t.Owner != nil {
		resp.Customer = &ownerResponse{
			ID:       t.Owner.ID,
			Code:     t.Owner.Code,
			FullName: t.Owner.FullName,
			Phone:    t.Owner.Phone,
		}
	}

	return resp
}

func toResponseList(tickets []*ticket.Ticket, capacity int) []ticketResponse {
	resp := make([]ticketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = toResponse(t, capacity)
	}

	return resp
}
