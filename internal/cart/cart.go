package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
)

// TaxRate is the flat tax applied on checkout.
const TaxRate = 0.10

// Entry is one line of the in-progress cart. The item is a snapshot taken
// when it was first added; catalog edits after that point do not reach it.
type Entry struct {
	Item     catalog.Item `json:"item"`
	Quantity int64        `json:"quantity"`
}

// Appender persists a completed checkout. Satisfied by *ledger.Service.
type Appender interface {
	Append(ctx context.Context, tx *ledger.Transaction) (*ledger.Transaction, error)
}

// Cart is the session-private selection of items before checkout. It lives
// only in memory and is never shared between sessions. Entries keep
// insertion order and hold at most one entry per item id.
type Cart struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add puts the item in the cart with quantity 1, or bumps the quantity by 1
// if an entry with the same item id already exists.
func (c *Cart) Add(item catalog.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity++
			return
		}
	}

	c.entries = append(c.entries, Entry{Item: item, Quantity: 1})
}

// SetQuantity sets an entry's quantity exactly. A quantity of zero or less
// removes the entry.
func (c *Cart) SetQuantity(itemID string, quantity int64) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the entry for the item id. Removing an absent id is a no-op.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
}

// Entries returns a copy of the cart's entries in insertion order.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Entry(nil), c.entries...)
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Subtotal returns the pre-tax sum of price times quantity over all entries.
func (c *Cart) Subtotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return subtotal(c.entries)
}

func subtotal(entries []Entry) int64 {
	var sum int64
	for _, e := range entries {
		sum += e.Item.Price * e.Quantity
	}

	return sum
}

// Tax returns the flat tax owed on a subtotal, rounded to the nearest minor
// currency unit.
func Tax(sub int64) int64 {
	return decimal.NewFromInt(sub).
		Mul(decimal.NewFromFloat(TaxRate)).
		Round(0).
		IntPart()
}

// Checkout records the cart as a ledger transaction and empties the cart.
// An empty cart is a silent no-op returning (nil, nil). The persisted total
// is the post-tax amount actually charged. The cart is cleared only after
// the append succeeds; on failure it is left untouched so the sale can be
// retried.
func (c *Cart) Checkout(ctx context.Context, appender Appender) (*ledger.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		return nil, nil
	}

	lines := make([]ledger.Line, len(c.entries))
	for i, e := range c.entries {
		lines[i] = ledger.Line{Item: e.Item, Quantity: e.Quantity}
	}

	sub := subtotal(c.entries)
	now := time.Now()

	tx := &ledger.Transaction{
		ID:        uuid.NewString(),
		Items:     lines,
		Subtotal:  sub,
		Total:     sub + Tax(sub),
		Date:      now.Format(time.DateOnly),
		Timestamp: now.UnixMilli(),
	}

	stored, err := appender.Append(ctx, tx)
	if err != nil {
		return nil, err
	}

	c.entries = nil

	return stored, nil
}
