package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/report"
)

type ReportsModel struct {
	CommonModel
	ledgerService *ledger.Service

	reports []report.MonthlyReport
	cursor  int
	loading bool
	status  string
}

func NewReportsModel(ledgerSvc *ledger.Service) ReportsModel {
	return ReportsModel{ledgerService: ledgerSvc, loading: true}
}

func (m ReportsModel) Title() string { return "Sales Reports" }

func (m ReportsModel) ShortHelp() string {
	return "Esc: back | Up/Down: month"
}

func (m ReportsModel) Init() tea.Cmd {
	return m.loadReportsCmd()
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReportsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.reports = msg.reports
		if len(m.reports) == 0 {
			m.status = "No sales recorded yet."
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.reports)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

func (m ReportsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Building reports...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Monthly Sales") + "\n\n")

	for i, rep := range m.reports {
		line := fmt.Sprintf("%s %d  %10s  (%d transactions)",
			MonthName(rep.Month), rep.Year, FormatAmount(rep.TotalSales), rep.TransactionCount)

		if i == m.cursor {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line + "\n")
	}

	if m.cursor < len(m.reports) {
		b.WriteString("\n" + m.topItemsView(m.reports[m.cursor]))
	}

	if m.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.status) + "\n")
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m ReportsModel) topItemsView(rep report.MonthlyReport) string {
	if len(rep.TopItems) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Top sellers") + "\n")

	for i, item := range rep.TopItems {
		b.WriteString(fmt.Sprintf("  %2d. %-30s x%-4d %10s\n",
			i+1, item.Name, item.Quantity, FormatAmount(item.Revenue)))
	}

	return b.String()
}

type loadReportsMsg struct {
	reports []report.MonthlyReport
	err     error
}

func (m ReportsModel) loadReportsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.ledgerService.List(ctx)
		if err != nil {
			return loadReportsMsg{err: err}
		}

		return loadReportsMsg{reports: report.AllMonthly(txs)}
	}
}
