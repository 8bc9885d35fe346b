package ticket_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

func testRaffle(id uuid.UUID) *raffle.Raffle {
	return &raffle.Raffle{
		ID:          id,
		Name:        "Rifa de prueba",
		TicketPrice: decimal.RequireFromString("10.00"),
		DrawDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DrawTime:    "7:00 pm",
		Capacity:    100,
	}
}

func newServices(t *testing.T) (*ticket.Service, *ticket.MockRepository, *raffle.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := ticket.NewMockRepository(ctrl)
	raffleRepo := raffle.NewMockRepository(ctrl)

	return ticket.NewService(repo, raffle.NewService(raffleRepo)), repo, raffleRepo
}

func TestService_Assign(t *testing.T) {
	raffleID := uuid.New()
	customerID := uuid.New()

	type testCase struct {
		name       string
		number     int
		payment    string
		setupMock  func(repo *ticket.MockRepository)
		wantErr    bool
		wantStatus ticket.Status
	}

	tests := []testCase{
		{
			name:    "ReservedWithoutPayment",
			number:  7,
			payment: "0",
			setupMock: func(repo *ticket.MockRepository) {
				repo.EXPECT().
					CreateTicket(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: ticket.StatusReserved,
		},
		{
			name:    "PartialWithInitialPayment",
			number:  7,
			payment: "4.00",
			setupMock: func(repo *ticket.MockRepository) {
				repo.EXPECT().
					CreateTicket(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: ticket.StatusPartiallyPaid,
		},
		{
			name:    "PaidOutright",
			number:  7,
			payment: "10.00",
			setupMock: func(repo *ticket.MockRepository) {
				repo.EXPECT().
					CreateTicket(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: ticket.StatusPaid,
		},
		{
			name:    "NumberOutOfRange",
			number:  100,
			payment: "0",
			wantErr: true,
		},
		{
			name:    "NegativeNumber",
			number:  -1,
			payment: "0",
			wantErr: true,
		},
		{
			name:    "NegativePayment",
			number:  7,
			payment: "-1.00",
			wantErr: true,
		},
		{
			name:    "PaymentAbovePrice",
			number:  7,
			payment: "10.01",
			wantErr: true,
		},
		{
			name:    "NumberAlreadyTaken",
			number:  7,
			payment: "0",
			setupMock: func(repo *ticket.MockRepository) {
				repo.EXPECT().
					CreateTicket(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(ticket.ErrConflict)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, raffleRepo := newServices(t)

			raffleRepo.EXPECT().
				GetRaffle(gomock.Any(), raffleID).
				Return(testRaffle(raffleID), nil)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Assign(context.Background(), ticket.AssignParams{
				RaffleID:       raffleID,
				Number:         tt.number,
				CustomerID:     customerID,
				InitialPayment: decimal.RequireFromString(tt.payment),
				Actor:          "operador",
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.number, got.Number)
			assert.True(t, got.Price.Equal(decimal.RequireFromString("10.00")))
		})
	}
}

func TestService_AddPayment(t *testing.T) {
	raffleID := uuid.New()
	ticketID := uuid.New()

	existing := func() *ticket.Ticket {
		return &ticket.Ticket{
			ID:         ticketID,
			RaffleID:   raffleID,
			Number:     3,
			Status:     ticket.StatusPartiallyPaid,
			Price:      decimal.RequireFromString("10.00"),
			AmountPaid: decimal.RequireFromString("4.00"),
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, repo, raffleRepo := newServices(t)

		repo.EXPECT().GetTicket(gomock.Any(), ticketID).Return(existing(), nil)
		raffleRepo.EXPECT().GetRaffle(gomock.Any(), raffleID).Return(testRaffle(raffleID), nil)
		repo.EXPECT().UpdateTicket(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.AddPayment(context.Background(), ticketID, decimal.RequireFromString("6.00"), "operador")

		require.NoError(t, err)
		assert.Equal(t, ticket.StatusPaid, got.Status)
		assert.True(t, got.AmountPaid.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		svc, _, _ := newServices(t)

		got, err := svc.AddPayment(context.Background(), ticketID, decimal.Zero, "operador")

		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("ExceedsBalance", func(t *testing.T) {
		svc, repo, _ := newServices(t)

		repo.EXPECT().GetTicket(gomock.Any(), ticketID).Return(existing(), nil)

		got, err := svc.AddPayment(context.Background(), ticketID, decimal.RequireFromString("6.01"), "operador")

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestService_MarkPaid(t *testing.T) {
	raffleID := uuid.New()
	ticketID := uuid.New()

	t.Run("SettlesOutstanding", func(t *testing.T) {
		svc, repo, raffleRepo := newServices(t)

		repo.EXPECT().GetTicket(gomock.Any(), ticketID).Return(&ticket.Ticket{
			ID:         ticketID,
			RaffleID:   raffleID,
			Number:     3,
			Status:     ticket.StatusPartiallyPaid,
			Price:      decimal.RequireFromString("10.00"),
			AmountPaid: decimal.RequireFromString("4.00"),
		}, nil)
		raffleRepo.EXPECT().GetRaffle(gomock.Any(), raffleID).Return(testRaffle(raffleID), nil)
		repo.EXPECT().UpdateTicket(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.MarkPaid(context.Background(), ticketID, "operador")

		require.NoError(t, err)
		assert.Equal(t, ticket.StatusPaid, got.Status)
		assert.True(t, got.AmountPaid.Equal(got.Price))
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		svc, repo, raffleRepo := newServices(t)

		repo.EXPECT().GetTicket(gomock.Any(), ticketID).Return(&ticket.Ticket{
			ID:         ticketID,
			RaffleID:   raffleID,
			Number:     3,
			Status:     ticket.StatusPaid,
			Price:      decimal.RequireFromString("10.00"),
			AmountPaid: decimal.RequireFromString("10.00"),
		}, nil)
		raffleRepo.EXPECT().GetRaffle(gomock.Any(), raffleID).Return(testRaffle(raffleID), nil)
		repo.EXPECT().UpdateTicket(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.MarkPaid(context.Background(), ticketID, "operador")

		require.NoError(t, err)
		assert.Equal(t, ticket.StatusPaid, got.Status)
	})
}

func TestService_RevertToReserved(t *testing.T) {
	raffleID := uuid.New()
	ticketID := uuid.New()

	svc, repo, raffleRepo := newServices(t)

	repo.EXPECT().GetTicket(gomock.Any(), ticketID).Return(&ticket.Ticket{
		ID:         ticketID,
		RaffleID:   raffleID,
		Number:     3,
		Status:     ticket.StatusPaid,
		Price:      decimal.RequireFromString("10.00"),
		AmountPaid: decimal.RequireFromString("10.00"),
	}, nil)
	raffleRepo.EXPECT().GetRaffle(gomock.Any(), raffleID).Return(testRaffle(raffleID), nil)
	repo.EXPECT().UpdateTicket(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.RevertToReserved(context.Background(), ticketID, "operador")

	require.NoError(t, err)
	assert.Equal(t, ticket.StatusReserved, got.Status)
	assert.True(t, got.AmountPaid.IsZero())
}

func TestService_Release(t *testing.T) {
	raffleID := uuid.New()
	ticketID := uuid.New()

	svc, repo, raffleRepo := newServices(t)

	repo.EXPECT().GetTicket(gomock.Any(), ticketID).Return(&ticket.Ticket{
		ID:         ticketID,
		RaffleID:   raffleID,
		Number:     3,
		Status:     ticket.StatusReserved,
		Price:      decimal.RequireFromString("10.00"),
		AmountPaid: decimal.Zero,
	}, nil)
	raffleRepo.EXPECT().GetRaffle(gomock.Any(), raffleID).Return(testRaffle(raffleID), nil)
	repo.EXPECT().DeleteTicket(gomock.Any(), ticketID, gomock.Any()).Return(nil)

	err := svc.Release(context.Background(), ticketID, "operador")

	assert.NoError(t, err)
}
