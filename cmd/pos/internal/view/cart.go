package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Vicky-01/billing-software/internal/cart"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
)

type cartState int

const (
	cartStateList cartState = iota
	cartStateConfirm
)

type CartModel struct {
	CommonModel
	cart          *cart.Cart
	ledgerService *ledger.Service

	state   cartState
	cursor  int
	form    *huh.Form
	status  string
	confirm bool
}

func NewCartModel(c *cart.Cart, ledgerSvc *ledger.Service) CartModel {
	return CartModel{cart: c, ledgerService: ledgerSvc}
}

func (m CartModel) Title() string { return "Cart" }

func (m CartModel) ShortHelp() string {
	switch m.state {
	case cartStateList:
		return "Esc: back | +/-: quantity | x: remove | c: clear | p: pay"
	case cartStateConfirm:
		return "Esc: cancel | Enter: confirm"
	}

	return ""
}

func (m CartModel) Init() tea.Cmd {
	return nil
}

func (m CartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(checkoutResultMsg); ok {
		m.state = cartStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Payment failed: %v", msg.err)
			return m, nil
		}

		if msg.tx == nil {
			m.status = "Cart is empty"
			return m, nil
		}

		m.status = fmt.Sprintf("Payment successful! Total %s (receipt %s)",
			FormatAmount(msg.tx.Total), msg.tx.ID)
		m.cursor = 0

		return m, nil
	}

	switch m.state {
	case cartStateList:
		return m.updateList(msg)
	case cartStateConfirm:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m CartModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	entries := m.cart.Entries()

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case "+", "=":
		if m.cursor < len(entries) {
			e := entries[m.cursor]
			m.cart.SetQuantity(e.Item.ID, e.Quantity+1)
		}
	case "-":
		if m.cursor < len(entries) {
			e := entries[m.cursor]
			m.cart.SetQuantity(e.Item.ID, e.Quantity-1)
			m.clampCursor()
		}
	case "x", "delete":
		if m.cursor < len(entries) {
			m.cart.Remove(entries[m.cursor].Item.ID)
			m.clampCursor()
		}
	case "c":
		m.cart.Clear()
		m.cursor = 0
		m.status = "Cart cleared"
	case "p":
		if m.cart.Len() == 0 {
			m.status = "Cart is empty"
			return m, nil
		}

		return m.startConfirm()
	}

	return m, nil
}

func (m *CartModel) clampCursor() {
	if n := m.cart.Len(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func (m CartModel) startConfirm() (tea.Model, tea.Cmd) {
	sub := m.cart.Subtotal()
	total := sub + cart.Tax(sub)

	m.confirm = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("pay").
				Title(fmt.Sprintf("Charge %s (incl. tax)?", FormatAmount(total))).
				Affirmative("Pay").
				Negative("Cancel").
				Value(&m.confirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = cartStateConfirm

	return m, m.form.Init()
}

func (m CartModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = cartStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.confirm {
		m.state = cartStateList
		m.form = nil

		return m, nil
	}

	return m, m.checkoutCmd()
}

func (m CartModel) View() string {
	if m.state == cartStateConfirm && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	entries := m.cart.Entries()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Cart") + "\n\n")

	if len(entries) == 0 {
		b.WriteString("Your cart is empty.\n")
	}

	for i, e := range entries {
		line := fmt.Sprintf("%-30s x%-3d %10s", e.Item.Name, e.Quantity,
			FormatAmount(e.Item.Price*e.Quantity))

		if i == m.cursor {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line + "\n")
	}

	sub := m.cart.Subtotal()
	tax := cart.Tax(sub)

	b.WriteString(fmt.Sprintf("\nSubtotal: %s\n", FormatAmount(sub)))
	b.WriteString(fmt.Sprintf("Tax:      %s\n", FormatAmount(tax)))
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Total:    %s", FormatAmount(sub+tax))) + "\n")

	if m.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.status) + "\n")
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

type checkoutResultMsg struct {
	tx  *ledger.Transaction
	err error
}

func (m CartModel) checkoutCmd() tea.Cmd {
	c := m.cart
	svc := m.ledgerService

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		tx, err := c.Checkout(ctx, svc)

		return checkoutResultMsg{tx: tx, err: err}
	}
}
