package raffle

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("raffle not found")

	// ErrUnsupportedCapacity is returned when a raffle's capacity does not
	// match one of the defined grid tiers. There is deliberately no
	// fallback tier.
	ErrUnsupportedCapacity = errors.New("unsupported raffle capacity")
)

// MaxPrizes is the number of prize slots a raffle carries; unused slots
// are empty strings.
const MaxPrizes = 5

// Raffle represents a numbered-ticket drawing. Capacity is a required,
// first-class attribute; ticket numbers run [0, Capacity).
type Raffle struct {
	ID          uuid.UUID
	Name        string
	TicketPrice decimal.Decimal
	DrawDate    time.Time
	DrawTime    string
	Capacity    int
	Prizes      [MaxPrizes]string
	CreatedAt   time.Time
}

// PrizeLines returns the non-empty prize texts in slot order.
func (r *Raffle) PrizeLines() []string {
	var lines []string

	for _, p := range r.Prizes {
		if p != "" {
			lines = append(lines, p)
		}
	}

	return lines
}

// Company holds the business identity printed on receipts, read from the
// configuracion key/value table.
type Company struct {
	Name  string
	TaxID string
	Phone string
}

// ValidCapacity reports whether c maps to a defined grid tier.
func ValidCapacity(c int) bool {
	switch c {
	case 100, 1000:
		return true
	}

	return false
}

// PadWidth returns the zero-padding width for ticket numbers of a raffle:
// 2 digits up to 100 tickets, 3 digits above.
func PadWidth(capacity int) int {
	if capacity <= 100 {
		return 2
	}

	return 3
}

// FormatNumber renders a ticket number zero-padded for its raffle, e.g.
// 7 -> "07" for capacity 100 and "007" for capacity 1000.
func FormatNumber(n, capacity int) string {
	return fmt.Sprintf("%0*d", PadWidth(capacity), n)
}
