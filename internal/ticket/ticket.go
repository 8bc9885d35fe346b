package ticket

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the state of an assigned ticket. A number with no row at all
// is available; "available" never appears as a stored status.
type Status string

const (
	StatusReserved      Status = "apartado"
	StatusPartiallyPaid Status = "abonado"
	StatusPaid          Status = "pagado"
)

// paidEpsilon absorbs sub-cent residue: a balance of 0.01 or less counts
// as fully paid.
var paidEpsilon = decimal.New(1, -2)

// DeriveStatus is the single source of truth for ticket state. Every
// mutation path recomputes status through it; nothing compares price and
// amount paid anywhere else.
func DeriveStatus(price, amountPaid decimal.Decimal) Status {
	if price.Sub(amountPaid).LessThanOrEqual(paidEpsilon) {
		return StatusPaid
	}

	if amountPaid.LessThanOrEqual(decimal.Zero) {
		return StatusReserved
	}

	return StatusPartiallyPaid
}

var (
	ErrNotFound = errors.New("ticket not found")

	// ErrConflict means the (raffle, number) pair is already taken.
	ErrConflict = errors.New("ticket number already assigned")
)

// ValidationError reports a mutation rejected server-side, before it
// reaches the database.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Ticket is one numbered slot in a raffle, owned by exactly one customer
// from assignment until release.
type Ticket struct {
	ID         uuid.UUID
	RaffleID   uuid.UUID
	Number     int
	Status     Status
	Price      decimal.Decimal
	AmountPaid decimal.Decimal
	CustomerID uuid.UUID
	Owner      *Owner // Loaded via JOIN
	AssignedAt time.Time
	UpdatedAt  *time.Time
}

// Owner is the customer snapshot attached to a ticket row.
type Owner struct {
	ID       uuid.UUID
	Code     string
	FullName string
	Phone    string
}

// Balance returns the outstanding amount (price minus what was paid).
func (t *Ticket) Balance() decimal.Decimal {
	return t.Price.Sub(t.AmountPaid)
}
