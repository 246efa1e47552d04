package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
)

func TestRender(t *testing.T) {
	tx := &ledger.Transaction{
		ID: "tx_1",
		Items: []ledger.Line{
			{Item: catalog.Item{ID: "item_1", Name: "Football", Price: 1299}, Quantity: 2},
			{Item: catalog.Item{ID: "item_2", Name: "Basketball", Price: 1499}, Quantity: 1},
		},
		Subtotal:  4097,
		Total:     4507,
		Date:      "2024-03-05",
		Timestamp: time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local).UnixMilli(),
	}

	pdf, err := Render(tx, "Test Shop")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	assert.Equal(t, "%PDF-", string(pdf[:5]))
}

func TestRenderEmptyTransaction(t *testing.T) {
	tx := &ledger.Transaction{
		ID:   "tx_empty",
		Date: "2024-03-05",
	}

	pdf, err := Render(tx, "Test Shop")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12.99", formatAmount(1299))
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "100.00", formatAmount(10000))
}
