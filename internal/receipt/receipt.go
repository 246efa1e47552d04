// Package receipt renders a stored transaction as a printable PDF bill.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/Mr-Vicky-01/billing-software/internal/cart"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
)

// formatAmount renders minor currency units as a fixed two-decimal string.
func formatAmount(units int64) string {
	return decimal.NewFromInt(units).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// Render produces the PDF bill for one transaction. shopName heads the
// receipt; the tax line is recomputed from the stored subtotal so the split
// printed always matches what was charged.
func Render(tx *ledger.Transaction, shopName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, shopName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Receipt %s", tx.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tx.Date, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)

	for _, line := range tx.Items {
		pdf.CellFormat(90, 8, line.Item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatAmount(line.Item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, formatAmount(line.Revenue()), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)

	totalRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}

		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(150, 8, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, value, "", 1, "R", false, 0, "")
	}

	totalRow("Subtotal", formatAmount(tx.Subtotal), false)
	totalRow(fmt.Sprintf("Tax (%.0f%%)", cart.TaxRate*100), formatAmount(tx.Total-tx.Subtotal), false)
	totalRow("Total", formatAmount(tx.Total), true)

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 6, "Thank you for shopping with us!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}

	return buf.Bytes(), nil
}
