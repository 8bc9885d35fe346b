// Package history is the append-only audit log. Entries are written in
// the same database transaction as the ticket mutation they document;
// this package only carries the entry type and the read side.
package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ActionAssign   = "asignacion"
	ActionPayment  = "abono"
	ActionMarkPaid = "pago_total"
	ActionRevert   = "reversion"
	ActionRelease  = "liberacion"
)

type Entry struct {
	ID        uuid.UUID
	RaffleID  uuid.UUID
	Actor     string
	Action    string
	Detail    string
	Amount    decimal.Decimal
	CreatedAt time.Time
}
