package receipt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifasve/rifas/internal/customer"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

func buildFixtures() (*ticket.Ticket, *customer.Customer, *raffle.Raffle, *raffle.Company) {
	rf := &raffle.Raffle{
		Name:        "Gran Rifa de Aniversario",
		TicketPrice: decimal.RequireFromString("10.00"),
		DrawDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DrawTime:    "7:00 pm",
		Capacity:    100,
		Prizes:      [raffle.MaxPrizes]string{"Moto", "Televisor"},
	}

	c := &customer.Customer{
		Code:       "CL-ABCD1234",
		FullName:   "María Pérez",
		NationalID: "V-12345678",
		Phone:      "04141234567",
		Address:    "Av. Bolívar, Caracas",
	}

	t := &ticket.Ticket{
		Number:     7,
		Status:     ticket.StatusPartiallyPaid,
		Price:      rf.TicketPrice,
		AmountPaid: decimal.RequireFromString("4.00"),
		AssignedAt: time.Date(2026, 8, 20, 17, 7, 0, 0, time.UTC),
	}

	co := &raffle.Company{
		Name:  "Inversiones La Suerte C.A.",
		TaxID: "J-12345678-9",
		Phone: "0414-1234567",
	}

	return t, c, rf, co
}

func TestPageHeight(t *testing.T) {
	type testCase struct {
		name   string
		prizes int
		want   float64
	}

	tests := []testCase{
		{name: "NoPrizes", prizes: 0, want: 560},
		{name: "UnderBase", prizes: 2, want: 560},
		{name: "AtBase", prizes: 3, want: 560},
		{name: "OneExtra", prizes: 4, want: 576},
		{name: "TwoExtra", prizes: 5, want: 592},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageHeight(tt.prizes))
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(t.TempDir())

	tk, c, rf, co := buildFixtures()

	out, err := b.Build(tk, c, rf, co)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	b := NewBuilder(t.TempDir())

	tk, c, rf, co := buildFixtures()

	first, err := b.Build(tk, c, rf, co)
	require.NoError(t, err)

	second, err := b.Build(tk, c, rf, co)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuilder_Build_PaidTicket(t *testing.T) {
	b := NewBuilder(t.TempDir())

	tk, c, rf, co := buildFixtures()
	tk.AmountPaid = tk.Price
	tk.Status = ticket.StatusPaid

	out, err := b.Build(tk, c, rf, co)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 10))
	assert.Equal(t, "12345", truncate("1234567890", 5))

	// Cuts on runes, not bytes.
	assert.Equal(t, "más", truncate("más allá", 3))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "5:07 pm", formatClock(time.Date(2026, 8, 20, 17, 7, 0, 0, time.UTC)))
	assert.Equal(t, "9:30 am", formatClock(time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "12:00 am", formatClock(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)))
}
