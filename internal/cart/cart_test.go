package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Mr-Vicky-01/billing-software/internal/cart"
	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
)

func football() catalog.Item {
	return catalog.Item{ID: "item_1", Name: "Football", Price: 1299}
}

func basketball() catalog.Item {
	return catalog.Item{ID: "item_2", Name: "Basketball", Price: 1599}
}

func TestCart_AddMergesByItemID(t *testing.T) {
	c := cart.New()

	for range 3 {
		c.Add(football())
	}

	c.Add(basketball())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "item_1", entries[0].Item.ID)
	assert.Equal(t, int64(3), entries[0].Quantity)
	assert.Equal(t, "item_2", entries[1].Item.ID)
	assert.Equal(t, int64(1), entries[1].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	type testCase struct {
		name     string
		quantity int64
		wantLen  int
		wantQty  int64
	}

	tests := []testCase{
		{name: "SetExact", quantity: 5, wantLen: 1, wantQty: 5},
		{name: "ZeroRemoves", quantity: 0, wantLen: 0},
		{name: "NegativeRemoves", quantity: -1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New()
			c.Add(football())

			c.SetQuantity("item_1", tt.quantity)

			entries := c.Entries()
			require.Len(t, entries, tt.wantLen)

			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, entries[0].Quantity)
			}
		})
	}
}

func TestCart_SetQuantityUnknownIDIsNoop(t *testing.T) {
	c := cart.New()
	c.Add(football())

	c.SetQuantity("missing", 4)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].Quantity)
}

func TestCart_Subtotal(t *testing.T) {
	c := cart.New()
	c.Add(football())
	c.Add(football())
	c.Add(basketball())

	assert.Equal(t, int64(2*1299+1599), c.Subtotal())

	// A free item changes the entry count but not the subtotal.
	c.Add(catalog.Item{ID: "item_9", Name: "Sticker", Price: 0})
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, int64(2*1299+1599), c.Subtotal())
}

func TestCart_SnapshotIsolation(t *testing.T) {
	item := football()

	c := cart.New()
	c.Add(item)

	// A later catalog edit must not reach the entry already in the cart.
	item.Price = 9999
	item.Name = "Deluxe Football"

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Football", entries[0].Item.Name)
	assert.Equal(t, int64(1299), entries[0].Item.Price)
}

func TestTax(t *testing.T) {
	assert.Equal(t, int64(10), cart.Tax(100))
	assert.Equal(t, int64(130), cart.Tax(1299))
	assert.Equal(t, int64(0), cart.Tax(0))
}

func TestCart_CheckoutEmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No AppendTransaction expectation: the ledger must not be touched.
	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo, nil)

	c := cart.New()

	tx, err := c.Checkout(context.Background(), svc)
	assert.NoError(t, err)
	assert.Nil(t, tx)
	assert.Zero(t, c.Len())
}

func TestCart_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var appended *ledger.Transaction

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		AppendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
			appended = tx
			return nil
		})

	svc := ledger.NewService(repo, nil)

	c := cart.New()
	c.Add(football())
	c.Add(football())
	c.Add(basketball())

	tx, err := c.Checkout(context.Background(), svc)
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Same(t, appended, tx)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, int64(2*1299+1599), tx.Subtotal)
	assert.Equal(t, tx.Subtotal+cart.Tax(tx.Subtotal), tx.Total)
	assert.NotEmpty(t, tx.Date)
	assert.NotZero(t, tx.Timestamp)

	require.Len(t, tx.Items, 2)
	assert.Equal(t, int64(2), tx.Items[0].Quantity)

	// Checkout clears the cart.
	assert.Zero(t, c.Len())
}

func TestCart_CheckoutAppendFailureKeepsCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		AppendTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("storage down"))

	svc := ledger.NewService(repo, nil)

	c := cart.New()
	c.Add(football())

	tx, err := c.Checkout(context.Background(), svc)
	assert.Error(t, err)
	assert.Nil(t, tx)

	// The sale must stay retryable.
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1299), c.Subtotal())
}

func TestCart_CheckoutSnapshotSurvivesCatalogEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var appended *ledger.Transaction

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		AppendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
			appended = tx
			return nil
		})

	svc := ledger.NewService(repo, nil)

	item := football()

	c := cart.New()
	c.Add(item)

	_, err := c.Checkout(context.Background(), svc)
	require.NoError(t, err)

	item.Price = 1

	require.Len(t, appended.Items, 1)
	assert.Equal(t, int64(1299), appended.Items[0].Item.Price)
}
