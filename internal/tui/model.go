// Package tui is the interactive terminal front end: a Lookup tab and a
// Register / Order tab over one bookstore session.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/madang/internal/bookstore"
	"github.com/mesh-intelligence/madang/pkg/types"
)

type tab int

const (
	lookupTab tab = iota
	registerTab
)

var tabTitles = []string{"Lookup", "Register / Order"}

// Register / Order fields in focus order.
const (
	fieldName = iota
	fieldAddress
	fieldPhone
	fieldBook
	fieldPrice
	fieldCount
)

var fieldLabels = [...]string{"Name", "Address", "Phone", "Book", "Price"}

// Model is the bubbletea model of one interactive session. Flows run
// synchronously inside Update; the database is local and each flow is a
// single statement.
type Model struct {
	ctx    context.Context
	svc    *bookstore.Service
	sess   *bookstore.Session
	status *Status
	keys   keyMap
	help   help.Model
	width  int

	tab tab

	lookupInput textinput.Model
	history     table.Model
	result      *bookstore.LookupResult

	customer [3]textinput.Model // name, address, phone
	price    textinput.Model
	focus    int
	catalog  bookstore.Catalog
	book     int
}

// New builds the model. The book catalog is read here, once; a failed read
// shows on the status line and leaves only the "no selection" entry.
func New(ctx context.Context, svc *bookstore.Service, sess *bookstore.Session, status *Status) Model {
	lookup := newInput("Customer name", 64)
	lookup.Focus()

	var customer [3]textinput.Model
	customer[fieldName] = newInput("Customer name", 64)
	customer[fieldAddress] = newInput("Address (optional)", 128)
	customer[fieldPhone] = newInput("Phone (optional)", 32)

	price := newInput("", 12)
	price.SetValue(strconv.FormatInt(svc.Pricing().Min, 10))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "bookname", Width: 28},
			{Title: "orderdate", Width: 19},
			{Title: "saleprice", Width: 10},
		}),
		table.WithFocused(false),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.Foreground(textPrimary).Bold(false)
	t.SetStyles(s)

	return Model{
		ctx:         ctx,
		svc:         svc,
		sess:        sess,
		status:      status,
		keys:        keys,
		help:        help.New(),
		lookupInput: lookup,
		history:     t,
		customer:    customer,
		price:       price,
		catalog:     svc.Catalog(ctx),
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(secondaryColor)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(textMuted)
	return ti
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, svc *bookstore.Service, sess *bookstore.Session, status *Status) error {
	p := tea.NewProgram(New(ctx, svc, sess, status), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.SwitchTab):
			m.switchTab()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, nil
		}
		if m.tab == registerTab && m.handleFormKey(msg) {
			return m, nil
		}
	}

	return m, m.updateInput(msg)
}

// handleFormKey applies navigation and selector keys on the Register / Order
// tab. It reports whether the key was consumed.
func (m *Model) handleFormKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % fieldCount)
		return true
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return true
	}

	switch m.focus {
	case fieldBook:
		n := len(m.catalog)
		if n == 0 {
			return true
		}
		switch {
		case key.Matches(msg, m.keys.NextBook):
			m.book = (m.book + 1) % n
		case key.Matches(msg, m.keys.PrevBook):
			m.book = (m.book + n - 1) % n
		}
		return true
	case fieldPrice:
		switch {
		case key.Matches(msg, m.keys.PriceUp):
			m.stepPrice(1)
			return true
		case key.Matches(msg, m.keys.PriceDown):
			m.stepPrice(-1)
			return true
		}
		if msg.Type == tea.KeyRunes && !digits(msg.Runes) {
			return true
		}
	}
	return false
}

func digits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// updateInput forwards msg to the focused text input.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.tab == lookupTab:
		m.lookupInput, cmd = m.lookupInput.Update(msg)
	case m.focus <= fieldPhone:
		m.customer[m.focus], cmd = m.customer[m.focus].Update(msg)
	case m.focus == fieldPrice:
		m.price, cmd = m.price.Update(msg)
	}
	return cmd
}

func (m *Model) switchTab() {
	if m.tab == lookupTab {
		m.tab = registerTab
		m.lookupInput.Blur()
		m.setFocus(m.focus)
		return
	}
	m.tab = lookupTab
	for i := range m.customer {
		m.customer[i].Blur()
	}
	m.price.Blur()
	m.lookupInput.Focus()
}

func (m *Model) setFocus(field int) {
	m.focus = field
	for i := range m.customer {
		if i == field {
			m.customer[i].Focus()
		} else {
			m.customer[i].Blur()
		}
	}
	if field == fieldPrice {
		m.price.Focus()
	} else {
		m.price.Blur()
	}
}

// priceValue parses the price input.
func (m *Model) priceValue() (int64, bool) {
	p, err := strconv.ParseInt(strings.TrimSpace(m.price.Value()), 10, 64)
	return p, err == nil
}

// stepPrice moves the price one step up or down, never below the minimum.
func (m *Model) stepPrice(dir int64) {
	pricing := m.svc.Pricing()
	p, ok := m.priceValue()
	if !ok {
		p = pricing.Min
	}
	p += dir * pricing.Step
	if p < pricing.Min {
		p = pricing.Min
	}
	m.price.SetValue(strconv.FormatInt(p, 10))
	m.price.CursorEnd()
}

// submit runs the flow behind the focused form. Enter in a customer field
// registers; enter on the book or price field places the order.
func (m *Model) submit() {
	m.status.Clear()
	switch {
	case m.tab == lookupTab:
		m.runLookup()
	case m.focus <= fieldPhone:
		m.runRegister()
	default:
		m.runOrder()
	}
}

func (m *Model) runLookup() {
	res, err := m.svc.Lookup(m.ctx, m.sess, m.lookupInput.Value())
	if err != nil {
		m.result = nil
		return
	}
	m.result = &res
	m.history.SetRows(historyRows(res.History))
}

func (m *Model) runRegister() {
	before := m.status.refreshes
	_, err := m.svc.Register(m.ctx, m.sess,
		m.customer[fieldName].Value(),
		m.customer[fieldAddress].Value(),
		m.customer[fieldPhone].Value(),
	)
	if err == nil && m.status.refreshes != before {
		for i := range m.customer {
			m.customer[i].Reset()
		}
	}
}

func (m *Model) runOrder() {
	price, ok := m.priceValue()
	if !ok {
		price = 0
	}
	m.svc.PlaceOrder(m.ctx, m.sess, m.catalog.Entry(m.book), price)
}

func historyRows(history []types.HistoryEntry) []table.Row {
	rows := make([]table.Row, len(history))
	for i, h := range history {
		rows[i] = table.Row{h.BookName, h.OrderDate, strconv.FormatInt(h.SalePrice, 10)}
	}
	return rows
}

func (m Model) View() string {
	sections := []string{
		titleStyle.Render("Madang Bookstore"),
		m.renderTabs(),
	}
	if m.tab == lookupTab {
		sections = append(sections, m.renderLookup())
	} else {
		sections = append(sections, m.renderForm())
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			rendered[i] = activeTabStyle.Render(title)
		} else {
			rendered[i] = inactiveTabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderLookup() string {
	lines := []string{focusedLabelStyle.Render("Name") + m.lookupInput.View()}
	if m.result != nil && m.result.Found {
		lines = append(lines, "", captionStyle.Render(fmt.Sprintf("Customer ID: %d", m.result.CustomerID)))
		if len(m.result.History) > 0 {
			lines = append(lines, m.history.View())
		}
	}
	return sectionStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderForm() string {
	var banner string
	if id, ok := m.sess.Customer(); ok {
		banner = bannerStyle.Render(fmt.Sprintf("Current customer: %s (ID %d)", m.sess.Name(), id))
	} else {
		banner = lipgloss.NewStyle().Foreground(textMuted).Render("No current customer. Look one up or register.")
	}

	register := []string{captionStyle.Render("Register customer")}
	for i := range m.customer {
		register = append(register, m.label(i)+m.customer[i].View())
	}

	book := m.catalog.Entry(m.book).Label()
	if m.focus == fieldBook {
		book = "‹ " + book + " ›"
	}
	order := []string{
		captionStyle.Render("New order"),
		m.label(fieldBook) + book,
		m.label(fieldPrice) + m.price.View(),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		banner,
		sectionStyle.Render(strings.Join(register, "\n")),
		sectionStyle.Render(strings.Join(order, "\n")),
	)
}

func (m Model) label(field int) string {
	if m.focus == field {
		return focusedLabelStyle.Render(fieldLabels[field])
	}
	return labelStyle.Render(fieldLabels[field])
}

func (m Model) renderStatus() string {
	n, ok := m.status.Notice()
	if !ok {
		return ""
	}
	return statusStyles[n.Level].Render(n.Text)
}
