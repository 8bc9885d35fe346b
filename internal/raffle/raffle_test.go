package raffle_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rifasve/rifas/internal/raffle"
)

func TestFormatNumber(t *testing.T) {
	type testCase struct {
		name     string
		n        int
		capacity int
		want     string
	}

	tests := []testCase{
		{name: "SmallBoardSingleDigit", n: 7, capacity: 100, want: "07"},
		{name: "SmallBoardTwoDigits", n: 42, capacity: 100, want: "42"},
		{name: "SmallBoardZero", n: 0, capacity: 100, want: "00"},
		{name: "LargeBoardSingleDigit", n: 7, capacity: 1000, want: "007"},
		{name: "LargeBoardMax", n: 999, capacity: 1000, want: "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, raffle.FormatNumber(tt.n, tt.capacity))
		})
	}
}

func TestValidCapacity(t *testing.T) {
	assert.True(t, raffle.ValidCapacity(100))
	assert.True(t, raffle.ValidCapacity(1000))
	assert.False(t, raffle.ValidCapacity(0))
	assert.False(t, raffle.ValidCapacity(50))
	assert.False(t, raffle.ValidCapacity(500))
	assert.False(t, raffle.ValidCapacity(10000))
}

func TestRaffle_PrizeLines(t *testing.T) {
	r := &raffle.Raffle{
		Prizes: [raffle.MaxPrizes]string{"Moto", "", "Televisor", "", ""},
	}

	assert.Equal(t, []string{"Moto", "Televisor"}, r.PrizeLines())
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    raffle.CreateParams
		setupMock func(m *raffle.MockRepository)
		wantErr   bool
	}

	valid := raffle.CreateParams{
		Name:        "Rifa Aniversario",
		TicketPrice: decimal.RequireFromString("10.00"),
		DrawDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DrawTime:    "7:00 pm",
		Capacity:    100,
	}

	tests := []testCase{
		{
			name:   "Success",
			params: valid,
			setupMock: func(m *raffle.MockRepository) {
				m.EXPECT().
					CreateRaffle(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "EmptyName",
			params: raffle.CreateParams{
				Name:        "   ",
				TicketPrice: valid.TicketPrice,
				Capacity:    100,
			},
			wantErr: true,
		},
		{
			name: "ZeroPrice",
			params: raffle.CreateParams{
				Name:     "Rifa",
				Capacity: 100,
			},
			wantErr: true,
		},
		{
			name: "UnsupportedCapacity",
			params: raffle.CreateParams{
				Name:        "Rifa",
				TicketPrice: valid.TicketPrice,
				Capacity:    250,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := raffle.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := raffle.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Rifa Aniversario", got.Name)
		})
	}
}

func TestService_Get_UnsupportedCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := raffle.NewMockRepository(ctrl)

	stored := &raffle.Raffle{Name: "Rifa vieja", Capacity: 250}
	repo.EXPECT().GetRaffle(gomock.Any(), gomock.Any()).Return(stored, nil)

	svc := raffle.NewService(repo)
	got, err := svc.Get(context.Background(), stored.ID)

	assert.ErrorIs(t, err, raffle.ErrUnsupportedCapacity)
	assert.Nil(t, got)
}
