package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/report"
)

func millis(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local).UnixMilli()
}

func tx(id string, total int64, ts int64, lines ...ledger.Line) *ledger.Transaction {
	return &ledger.Transaction{ID: id, Items: lines, Total: total, Timestamp: ts}
}

func line(name string, price, qty int64) ledger.Line {
	return ledger.Line{
		Item:     catalog.Item{ID: "id_" + name, Name: name, Price: price},
		Quantity: qty,
	}
}

func TestMonthly_TotalsAndCount(t *testing.T) {
	txs := []*ledger.Transaction{
		tx("a", 10000, millis(2024, time.March, 3)),
		tx("b", 25000, millis(2024, time.March, 20)),
		tx("c", 5000, millis(2024, time.April, 1)),
	}

	// Month is zero-based: 2 is March.
	march := report.Monthly(txs, 2024, 2)
	assert.Equal(t, int64(35000), march.TotalSales)
	assert.Equal(t, 2, march.TransactionCount)

	april := report.Monthly(txs, 2024, 3)
	assert.Equal(t, int64(5000), april.TotalSales)
	assert.Equal(t, 1, april.TransactionCount)

	empty := report.Monthly(txs, 2024, 4)
	assert.Zero(t, empty.TotalSales)
	assert.Zero(t, empty.TransactionCount)
	assert.Empty(t, empty.TopItems)
}

func TestMonthly_TopItemsAggregation(t *testing.T) {
	ts := millis(2024, time.March, 10)

	txs := []*ledger.Transaction{
		tx("a", 0, ts,
			line("Football", 1299, 2),
			line("Basketball", 1599, 1),
		),
		tx("b", 0, ts,
			line("Football", 1299, 1),
		),
		// April sale must not leak into March's ranking.
		tx("c", 0, millis(2024, time.April, 10),
			line("Yoga Mat", 1249, 5),
		),
	}

	rep := report.Monthly(txs, 2024, 2)
	require.Len(t, rep.TopItems, 2)

	assert.Equal(t, "Football", rep.TopItems[0].Name)
	assert.Equal(t, int64(3), rep.TopItems[0].Quantity)
	assert.Equal(t, int64(3*1299), rep.TopItems[0].Revenue)

	assert.Equal(t, "Basketball", rep.TopItems[1].Name)
	assert.Equal(t, int64(1), rep.TopItems[1].Quantity)
	assert.Equal(t, int64(1599), rep.TopItems[1].Revenue)
}

func TestMonthly_TopItemsUsesSnapshottedPrice(t *testing.T) {
	// The ledger line carries the price at sale time; that is what revenue
	// must be computed from, regardless of the live catalog.
	txs := []*ledger.Transaction{
		tx("a", 0, millis(2024, time.March, 10), line("Football", 999, 2)),
	}

	rep := report.Monthly(txs, 2024, 2)
	require.Len(t, rep.TopItems, 1)
	assert.Equal(t, int64(1998), rep.TopItems[0].Revenue)
}

func TestMonthly_TopItemsTruncatedToTen(t *testing.T) {
	ts := millis(2024, time.March, 10)

	var lines []ledger.Line
	for i := 1; i <= 15; i++ {
		lines = append(lines, line(fmt.Sprintf("Item%02d", i), int64(i*100), 1))
	}

	txs := []*ledger.Transaction{tx("a", 0, ts, lines...)}

	rep := report.Monthly(txs, 2024, 2)
	require.Len(t, rep.TopItems, 10)

	for i := 1; i < len(rep.TopItems); i++ {
		assert.Greater(t, rep.TopItems[i-1].Revenue, rep.TopItems[i].Revenue)
	}

	assert.Equal(t, "Item15", rep.TopItems[0].Name)
	assert.Equal(t, "Item06", rep.TopItems[9].Name)
}

func TestMonthly_RevenueTieBreaksOnName(t *testing.T) {
	ts := millis(2024, time.March, 10)

	txs := []*ledger.Transaction{
		tx("a", 0, ts,
			line("Zebra Ball", 500, 1),
			line("Alpha Ball", 500, 1),
		),
	}

	rep := report.Monthly(txs, 2024, 2)
	require.Len(t, rep.TopItems, 2)
	assert.Equal(t, "Alpha Ball", rep.TopItems[0].Name)
	assert.Equal(t, "Zebra Ball", rep.TopItems[1].Name)
}

func TestMonthly_Deterministic(t *testing.T) {
	ts := millis(2024, time.March, 10)

	txs := []*ledger.Transaction{
		tx("a", 12345, ts,
			line("Football", 1299, 2),
			line("Basketball", 1599, 1),
			line("Yoga Mat", 1249, 4),
		),
		tx("b", 678, ts, line("Football", 1299, 1)),
	}

	first := report.Monthly(txs, 2024, 2)

	for range 5 {
		assert.Equal(t, first, report.Monthly(txs, 2024, 2))
	}
}

func TestAllMonthly(t *testing.T) {
	txs := []*ledger.Transaction{
		tx("a", 10000, millis(2024, time.March, 3)),
		tx("b", 25000, millis(2024, time.March, 20)),
		tx("c", 5000, millis(2024, time.April, 1)),
		tx("d", 700, millis(2023, time.December, 31)),
	}

	reports := report.AllMonthly(txs)
	require.Len(t, reports, 3)

	// Most recent month first.
	assert.Equal(t, 2024, reports[0].Year)
	assert.Equal(t, 3, reports[0].Month)
	assert.Equal(t, 2024, reports[1].Year)
	assert.Equal(t, 2, reports[1].Month)
	assert.Equal(t, 2023, reports[2].Year)
	assert.Equal(t, 11, reports[2].Month)

	// Buckets are disjoint and exhaustive.
	var count int
	for _, rep := range reports {
		count += rep.TransactionCount
	}

	assert.Equal(t, len(txs), count)
}

func TestAllMonthly_Empty(t *testing.T) {
	assert.Empty(t, report.AllMonthly(nil))
}
