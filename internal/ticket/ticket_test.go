package ticket_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rifasve/rifas/internal/ticket"
)

func TestDeriveStatus(t *testing.T) {
	price := decimal.RequireFromString("10.00")

	type testCase struct {
		name string
		paid string
		want ticket.Status
	}

	tests := []testCase{
		{name: "NothingPaid", paid: "0", want: ticket.StatusReserved},
		{name: "NegativeRecorded", paid: "-1", want: ticket.StatusReserved},
		{name: "Partial", paid: "4.50", want: ticket.StatusPartiallyPaid},
		{name: "OneCentShort", paid: "9.99", want: ticket.StatusPaid},
		{name: "TwoCentsShort", paid: "9.98", want: ticket.StatusPartiallyPaid},
		{name: "Exact", paid: "10.00", want: ticket.StatusPaid},
		{name: "Overpaid", paid: "10.50", want: ticket.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid := decimal.RequireFromString(tt.paid)
			assert.Equal(t, tt.want, ticket.DeriveStatus(price, paid))
		})
	}
}

func TestTicket_Balance(t *testing.T) {
	tk := &ticket.Ticket{
		Price:      decimal.RequireFromString("25.00"),
		AmountPaid: decimal.RequireFromString("10.00"),
	}

	assert.True(t, tk.Balance().Equal(decimal.RequireFromString("15.00")))
}
