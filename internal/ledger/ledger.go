package ledger

import (
	"errors"
	"time"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
)

var (
	// ErrNotFound is returned when no transaction exists for the requested id.
	ErrNotFound = errors.New("transaction not found")

	// ErrDuplicate is returned when appending a transaction whose id is
	// already in the ledger.
	ErrDuplicate = errors.New("duplicate transaction id")
)

// Line is a cart entry frozen at checkout time. The embedded item is a copy,
// not a reference: later catalog edits never change historical lines.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int64        `json:"quantity"`
}

// Revenue returns the amount this line contributed, at the snapshotted price.
func (l Line) Revenue() int64 {
	return l.Item.Price * l.Quantity
}

// Transaction is an immutable record of one completed checkout.
// The ledger is append-only: transactions are never updated or deleted.
type Transaction struct {
	ID        string `json:"id"`
	Items     []Line `json:"items"`
	Subtotal  int64  `json:"subtotal"` // Sum of line revenues, before tax
	Total     int64  `json:"total"`    // Amount charged, tax included
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"` // Milliseconds since epoch; sole field used for month bucketing
}

// Time returns the transaction's timestamp as a local time.Time.
func (t *Transaction) Time() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// InMonth reports whether the transaction falls in the given calendar month
// in local time. Month is zero-based (0 = January).
func (t *Transaction) InMonth(year, month int) bool {
	d := t.Time()
	return d.Year() == year && int(d.Month())-1 == month
}
