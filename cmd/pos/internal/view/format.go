package view

import (
	"context"
	"fmt"
	"time"
)

const storeTimeout = 5 * time.Second

// FormatAmount formats an amount stored in minor currency units.
func FormatAmount(units int64) string {
	return fmt.Sprintf("%.2f", float64(units)/100.0)
}

// MonthName renders a zero-based month number.
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return fmt.Sprintf("month %d", month)
	}

	return time.Month(month + 1).String()
}

// StoreCtx returns a context with a standard timeout for store operations.
func StoreCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}
