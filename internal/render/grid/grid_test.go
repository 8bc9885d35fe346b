package grid

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

func testRaffle(capacity int) *raffle.Raffle {
	return &raffle.Raffle{
		Name:        "Gran Rifa",
		TicketPrice: decimal.RequireFromString("10.00"),
		DrawDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DrawTime:    "7:00 pm",
		Capacity:    capacity,
		Prizes:      [raffle.MaxPrizes]string{"Moto", "Televisor"},
	}
}

func TestParseMode(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}

	tests := []testCase{
		{name: "EmptyDefaultsToAll", input: "", want: ModeAll},
		{name: "All", input: "all", want: ModeAll},
		{name: "Available", input: "available", want: ModeAvailable},
		{name: "Compact", input: "compact", want: ModeCompact},
		{name: "Unknown", input: "tiny", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_CellsPartitionTheBoard(t *testing.T) {
	for capacity, tr := range tiers {
		tr := tr

		cellW, cellH := tr.cellSize()
		assert.Greater(t, cellW, 0.0)
		assert.Greater(t, cellH, 0.0)

		seen := make(map[[2]float64]bool, capacity)

		for i := 0; i < capacity; i++ {
			x, y := tr.cellOrigin(i)

			// Every index gets a distinct origin inside the canvas.
			origin := [2]float64{x, y}
			assert.False(t, seen[origin], "capacity %d index %d reuses origin", capacity, i)
			seen[origin] = true

			assert.GreaterOrEqual(t, x, tr.margin)
			assert.LessOrEqual(t, x+cellW, float64(tr.canvasW)-tr.margin+tr.padding)
			assert.GreaterOrEqual(t, y, tr.margin+tr.headerH)
			assert.LessOrEqual(t, y+cellH, float64(tr.canvasH)-tr.margin+tr.padding)
		}

		// Last index lands on the last row and column.
		lastX, lastY := tr.cellOrigin(capacity - 1)
		assert.Equal(t, tr.margin+float64(tr.cols-1)*(cellW+tr.padding), lastX)
		assert.Equal(t, tr.margin+tr.headerH+float64(tr.rows-1)*(cellH+tr.padding), lastY)
	}
}

func TestTier_CompactHeight(t *testing.T) {
	tr := tiers[100]
	_, cellH := tr.cellSize()

	// 35 free numbers on 10 columns need 4 rows.
	want := int(2*tr.margin + tr.headerH + 4*(cellH+tr.padding))
	assert.Equal(t, want, tr.compactHeight(35))

	// A full board keeps its height equivalent.
	full := int(2*tr.margin + tr.headerH + 10*(cellH+tr.padding))
	assert.Equal(t, full, tr.compactHeight(100))
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(t.TempDir())

	occupancy := map[int]ticket.Status{
		0: ticket.StatusReserved,
		1: ticket.StatusPartiallyPaid,
		2: ticket.StatusPaid,
	}

	t.Run("FullBoardDimensions", func(t *testing.T) {
		img, err := r.Render(testRaffle(100), occupancy, ModeAll)

		require.NoError(t, err)
		bounds := img.Bounds()
		assert.Equal(t, 1500, bounds.Dx())
		assert.Equal(t, 1800, bounds.Dy())
	})

	t.Run("LargeBoardDimensions", func(t *testing.T) {
		img, err := r.Render(testRaffle(1000), map[int]ticket.Status{}, ModeAvailable)

		require.NoError(t, err)
		bounds := img.Bounds()
		assert.Equal(t, 4000, bounds.Dx())
		assert.Equal(t, 3000, bounds.Dy())
	})

	t.Run("CompactShrinksCanvas", func(t *testing.T) {
		// 65 taken leaves 35 free, which reflows into 4 rows.
		taken := make(map[int]ticket.Status, 65)
		for n := 0; n < 65; n++ {
			taken[n] = ticket.StatusPaid
		}

		img, err := r.Render(testRaffle(100), taken, ModeCompact)

		require.NoError(t, err)
		assert.Equal(t, tiers[100].compactHeight(35), img.Bounds().Dy())
		assert.Less(t, img.Bounds().Dy(), 1800)
	})

	t.Run("UnsupportedCapacity", func(t *testing.T) {
		img, err := r.Render(testRaffle(250), occupancy, ModeAll)

		assert.ErrorIs(t, err, raffle.ErrUnsupportedCapacity)
		assert.Nil(t, img)
	})
}
