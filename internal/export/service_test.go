package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rifasve/rifas/internal/export"
	"github.com/rifasve/rifas/internal/history"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

// Stub history repository; the package ships no generated mock because
// it has a single read method.
type stubHistoryRepo struct {
	entries []*history.Entry
}

func (s *stubHistoryRepo) ListEntries(ctx context.Context, raffleID uuid.UUID) ([]*history.Entry, error) {
	return s.entries, nil
}

func TestService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raffleID := uuid.New()

	rf := &raffle.Raffle{
		ID:          raffleID,
		Name:        "Gran Rifa",
		TicketPrice: decimal.RequireFromString("10.00"),
		DrawDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DrawTime:    "7:00 pm",
		Capacity:    100,
	}

	tickets := []*ticket.Ticket{
		{
			RaffleID:   raffleID,
			Number:     7,
			Status:     ticket.StatusPartiallyPaid,
			Price:      decimal.RequireFromString("10.00"),
			AmountPaid: decimal.RequireFromString("4.00"),
			AssignedAt: time.Date(2026, 8, 20, 17, 7, 0, 0, time.UTC),
			Owner: &ticket.Owner{
				Code:     "CL-ABCD1234",
				FullName: "Maria Perez",
				Phone:    "04141234567",
			},
		},
	}

	entries := []*history.Entry{
		{
			RaffleID:  raffleID,
			Actor:     "operador",
			Action:    history.ActionAssign,
			Detail:    "boleto 07 asignado",
			Amount:    decimal.RequireFromString("4.00"),
			CreatedAt: time.Date(2026, 8, 20, 17, 7, 0, 0, time.UTC),
		},
	}

	raffleRepo := raffle.NewMockRepository(ctrl)
	raffleRepo.EXPECT().GetRaffle(gomock.Any(), raffleID).Return(rf, nil)

	ticketRepo := ticket.NewMockRepository(ctrl)
	ticketRepo.EXPECT().
		ListTickets(gomock.Any(), ticket.ListFilter{RaffleID: raffleID}).
		Return(tickets, nil)

	raffleSvc := raffle.NewService(raffleRepo)
	svc := export.NewService(
		ticket.NewService(ticketRepo, raffleSvc),
		history.NewService(&stubHistoryRepo{entries: entries}),
		raffleSvc,
	)

	f, err := svc.Build(context.Background(), raffleID)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Boletos", "Historial"}, f.GetSheetList())

	// Ticket sheet: header then the single row.
	got, err := f.GetCellValue("Boletos", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Número", got)

	got, err = f.GetCellValue("Boletos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "07", got)

	got, err = f.GetCellValue("Boletos", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Maria Perez", got)

	got, err = f.GetCellValue("Boletos", "H2")
	require.NoError(t, err)
	assert.Equal(t, "$6.00", got)

	got, err = f.GetCellValue("Boletos", "I2")
	require.NoError(t, err)
	assert.Equal(t, "20/08/2026 5:07 pm", got)

	// History sheet.
	got, err = f.GetCellValue("Historial", "C2")
	require.NoError(t, err)
	assert.Equal(t, "asignacion", got)

	got, err = f.GetCellValue("Historial", "D2")
	require.NoError(t, err)
	assert.Equal(t, "boleto 07 asignado", got)
}
