// Package report derives monthly sales aggregates from a ledger snapshot.
// Every function here is pure: the same transactions always produce the
// same report, no matter how often it is computed.
package report

import (
	"sort"

	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
)

// ItemSales is one row of a report's top-seller ranking. Revenue is based
// on the price snapshotted at sale time, so later catalog edits never
// rewrite history.
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// MonthlyReport aggregates one calendar month of the ledger.
// Month is zero-based (0 = January).
type MonthlyReport struct {
	Year             int         `json:"year"`
	Month            int         `json:"month"`
	TotalSales       int64       `json:"totalSales"`
	TransactionCount int         `json:"transactionCount"`
	TopItems         []ItemSales `json:"topItems"`
}

// topItemLimit caps the top-seller ranking.
const topItemLimit = 10

// Monthly builds the report for the given local-time year and zero-based
// month. Transactions outside the month are ignored.
func Monthly(txs []*ledger.Transaction, year, month int) MonthlyReport {
	rep := MonthlyReport{Year: year, Month: month}

	sales := make(map[string]*ItemSales)

	for _, tx := range txs {
		if !tx.InMonth(year, month) {
			continue
		}

		rep.TotalSales += tx.Total
		rep.TransactionCount++

		for _, line := range tx.Items {
			s, ok := sales[line.Item.Name]
			if !ok {
				s = &ItemSales{Name: line.Item.Name}
				sales[line.Item.Name] = s
			}

			s.Quantity += line.Quantity
			s.Revenue += line.Revenue()
		}
	}

	rep.TopItems = rank(sales)

	return rep
}

// rank orders accumulated item sales by revenue descending. Ties break on
// name ascending so the ranking never depends on map iteration order.
func rank(sales map[string]*ItemSales) []ItemSales {
	ranked := make([]ItemSales, 0, len(sales))
	for _, s := range sales {
		ranked = append(ranked, *s)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}

		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topItemLimit {
		ranked = ranked[:topItemLimit]
	}

	return ranked
}

// AllMonthly partitions the ledger into (year, month) buckets and returns
// one report per non-empty bucket, most recent month first. Every
// transaction lands in exactly one bucket.
func AllMonthly(txs []*ledger.Transaction) []MonthlyReport {
	type key struct {
		year  int
		month int
	}

	seen := make(map[key]struct{})

	var keys []key

	for _, tx := range txs {
		d := tx.Time()

		k := key{year: d.Year(), month: int(d.Month()) - 1}
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}

		return keys[i].month > keys[j].month
	})

	reports := make([]MonthlyReport, len(keys))
	for i, k := range keys {
		reports[i] = Monthly(txs, k.year, k.month)
	}

	return reports
}
