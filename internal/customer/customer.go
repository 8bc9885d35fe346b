package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("customer not found")

// Customer is a ticket buyer. Customers are never deleted; a released
// ticket keeps its buyer's audit trail intact.
type Customer struct {
	ID         uuid.UUID
	Code       string
	FullName   string
	NationalID string
	Phone      string
	Address    string
	CreatedAt  time.Time
}

// ValidationError reports a rejected customer attribute.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
