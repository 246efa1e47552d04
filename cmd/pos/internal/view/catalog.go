package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Vicky-01/billing-software/internal/cart"
	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
)

// catalogItem wraps a catalog item to implement list.Item.
type catalogItem struct {
	item *catalog.Item
}

func (i catalogItem) Title() string {
	return fmt.Sprintf("%s  %s", i.item.Name, FormatAmount(i.item.Price))
}

func (i catalogItem) Description() string { return i.item.Description }

func (i catalogItem) FilterValue() string { return i.item.Name }

type CatalogModel struct {
	CommonModel
	catalogService *catalog.Service
	cart           *cart.Cart

	list    list.Model
	loading bool
	status  string
}

func NewCatalogModel(catalogSvc *catalog.Service, c *cart.Cart) CatalogModel {
	l := list.New([]list.Item{}, catalogItemDelegate{}, 0, 0)
	l.Title = "Menu"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return CatalogModel{
		catalogService: catalogSvc,
		cart:           c,
		list:           l,
		loading:        true,
	}
}

func (m CatalogModel) Title() string { return "Browse Menu" }

func (m CatalogModel) ShortHelp() string {
	return "Esc: back | Enter: add to cart | /: filter"
}

func (m CatalogModel) Init() tea.Cmd {
	return m.loadItemsCmd()
}

func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadItemsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			items[i] = catalogItem{item: item}
		}

		m.list.SetItems(items)

		return m, nil

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			if m.list.FilterState() == list.Filtering {
				break // let the list handle it (close filter)
			}

			return m, Back
		case tea.KeyEnter:
			if m.list.FilterState() == list.Filtering {
				break // let the list handle it (confirm filter)
			}

			if selected, ok := m.list.SelectedItem().(catalogItem); ok {
				m.cart.Add(*selected.item)
				m.status = fmt.Sprintf("%s added to cart (%d items)", selected.item.Name, m.cart.Len())
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m CatalogModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading menu...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

type loadItemsMsg struct {
	items []*catalog.Item
	err   error
}

func (m CatalogModel) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		items, err := m.catalogService.List(ctx)

		return loadItemsMsg{items: items, err: err}
	}
}

// catalogItemDelegate renders items in the list.
type catalogItemDelegate struct{}

func (d catalogItemDelegate) Height() int                             { return 2 }
func (d catalogItemDelegate) Spacing() int                            { return 0 }
func (d catalogItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d catalogItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(catalogItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	if i.Description() == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
