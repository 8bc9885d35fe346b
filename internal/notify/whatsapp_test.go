package notify_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rifasve/rifas/internal/customer"
	"github.com/rifasve/rifas/internal/notify"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

func TestNormalizePhone(t *testing.T) {
	type testCase struct {
		name        string
		phone       string
		countryCode string
		want        string
	}

	tests := []testCase{
		{name: "TenDigits", phone: "4141234567", countryCode: "58", want: "584141234567"},
		{name: "ElevenWithTrunkZero", phone: "04141234567", countryCode: "58", want: "584141234567"},
		{name: "AlreadyInternational", phone: "584141234567", countryCode: "58", want: "584141234567"},
		{name: "Formatted", phone: "(0414) 123-45.67", countryCode: "58", want: "584141234567"},
		{name: "EmptyCodeFallsBack", phone: "4141234567", countryCode: "", want: "584141234567"},
		{name: "OtherCountry", phone: "3001234567", countryCode: "57", want: "573001234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notify.NormalizePhone(tt.phone, tt.countryCode))
		})
	}
}

func TestNormalizePhone_SameNumberBothShapes(t *testing.T) {
	// The same line written with and without the trunk zero must resolve
	// to the same chat target.
	assert.Equal(t,
		notify.NormalizePhone("04141234567", "58"),
		notify.NormalizePhone("4141234567", "58"),
	)
}

func TestBuildChatLink(t *testing.T) {
	link := notify.BuildChatLink("04141234567", "58", "Hola Maria! ¿lista?")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/584141234567?text="))
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "Hola+Maria%21")
}

func TestTicketMessage(t *testing.T) {
	rf := &raffle.Raffle{
		Name:        "Gran Rifa",
		TicketPrice: decimal.RequireFromString("10.00"),
		DrawDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DrawTime:    "7:00 pm",
		Capacity:    100,
	}
	c := &customer.Customer{FullName: "Maria Perez", Phone: "04141234567"}
	tk := &ticket.Ticket{
		Number:     7,
		Status:     ticket.StatusPartiallyPaid,
		Price:      decimal.RequireFromString("10.00"),
		AmountPaid: decimal.RequireFromString("4.00"),
	}

	msg := notify.TicketMessage(tk, c, rf)

	assert.Contains(t, msg, "Hola Maria Perez!")
	assert.Contains(t, msg, "*07*")
	assert.Contains(t, msg, "ABONADO")
	assert.Contains(t, msg, "Precio: $10.00 | Abonado: $4.00 | Resta: $6.00")
	assert.Contains(t, msg, "15/09/2026 a las 7:00 pm")
}
