package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/madang/internal/bookstore"
	"github.com/mesh-intelligence/madang/internal/sqlite"
	"github.com/mesh-intelligence/madang/pkg/types"
)

var today = time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)

// setupModel returns a model over a seeded database.
func setupModel(t *testing.T) (Model, *sqlite.Backend) {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })
	_, err := b.Seed(context.Background())
	require.NoError(t, err)

	status := NewStatus()
	svc := bookstore.New(b, status, bookstore.Options{Now: func() time.Time { return today }})
	return New(context.Background(), svc, bookstore.NewSession(), status), b
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	switchTo = tea.KeyMsg{Type: tea.KeyCtrlT}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
	up       = tea.KeyMsg{Type: tea.KeyUp}
	down     = tea.KeyMsg{Type: tea.KeyDown}
)

func lastNotice(t *testing.T, m Model) bookstore.Notice {
	t.Helper()
	n, ok := m.status.Notice()
	require.True(t, ok, "expected a status message")
	return n
}

func TestLookupTab(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.Msg
		check func(t *testing.T, m Model)
	}{
		{
			name: "found customer shows caption and history",
			keys: []tea.Msg{typeText("박지성"), enter},
			check: func(t *testing.T, m Model) {
				require.NotNil(t, m.result)
				assert.True(t, m.result.Found)
				id, ok := m.sess.Customer()
				assert.True(t, ok)
				assert.Equal(t, int64(1), id)
				rows := m.history.Rows()
				require.Len(t, rows, 3)
				assert.Equal(t, "축구아는 여자", rows[0][0])
				assert.Contains(t, m.View(), "Customer ID: 1")
			},
		},
		{
			name: "unknown customer shows only the warning",
			keys: []tea.Msg{typeText("nobody"), enter},
			check: func(t *testing.T, m Model) {
				require.NotNil(t, m.result)
				assert.False(t, m.result.Found)
				_, ok := m.sess.Customer()
				assert.False(t, ok)
				assert.Equal(t, bookstore.LevelWarn, lastNotice(t, m).Level)
				assert.NotContains(t, m.View(), "Customer ID:")
			},
		},
		{
			name: "empty input runs nothing",
			keys: []tea.Msg{enter},
			check: func(t *testing.T, m Model) {
				assert.Nil(t, m.result)
				_, ok := m.status.Notice()
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := setupModel(t)
			tt.check(t, press(m, tt.keys...))
		})
	}
}

func TestRegisterFromForm(t *testing.T) {
	m, _ := setupModel(t)
	m = press(m, switchTo, typeText("Kim"), tabKey, typeText("Seoul"), enter)

	n := lastNotice(t, m)
	assert.Equal(t, bookstore.LevelSuccess, n.Level)
	assert.Contains(t, n.Text, "(ID: 6)")
	assert.Empty(t, m.customer[fieldName].Value(), "inputs are cleared after a registration")
	assert.Contains(t, m.View(), "Current customer: Kim (ID 6)")
}

func TestRegisterRequiresName(t *testing.T) {
	m, _ := setupModel(t)
	m = press(m, switchTo, tabKey, typeText("Seoul"), enter)

	assert.Equal(t, bookstore.LevelWarn, lastNotice(t, m).Level)
	assert.Equal(t, "Seoul", m.customer[fieldAddress].Value(), "input is kept after a rejected registration")
}

func TestOrderFromForm(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.Msg
		check func(t *testing.T, m Model, b *sqlite.Backend)
	}{
		{
			name: "looked-up customer buys the selected book",
			keys: []tea.Msg{
				typeText("김연경"), enter, switchTo,
				tabKey, tabKey, tabKey, right, right, right, right, right, // book 5
				tabKey, up, up, up, up, up, up, up, up, up, up, up, up, up, up, up, // 1 + 15 steps of 1000
				enter,
			},
			check: func(t *testing.T, m Model, b *sqlite.Backend) {
				n := lastNotice(t, m)
				require.Equal(t, bookstore.LevelSuccess, n.Level, n.Text)
				rs, err := b.Query(context.Background(),
					"SELECT custid, bookid, saleprice, CAST(orderdate AS TEXT) FROM Orders WHERE orderid = 11")
				require.NoError(t, err)
				require.Equal(t, 1, rs.Len())
				assert.Equal(t, []any{int64(3), int64(5), int64(15001), "2026-10-17"}, rs.Rows[0])
			},
		},
		{
			name: "no customer blocks the order",
			keys: []tea.Msg{switchTo, shiftTab, shiftTab, right, enter},
			check: func(t *testing.T, m Model, b *sqlite.Backend) {
				n := lastNotice(t, m)
				assert.Equal(t, bookstore.LevelWarn, n.Level)
				assert.Contains(t, n.Text, "customer")
			},
		},
		{
			name: "sentinel book blocks the order",
			keys: []tea.Msg{typeText("김연경"), enter, switchTo, shiftTab, enter},
			check: func(t *testing.T, m Model, b *sqlite.Backend) {
				assert.Equal(t, "Select a book.", lastNotice(t, m).Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, b := setupModel(t)
			tt.check(t, press(m, tt.keys...), b)
		})
	}
}

func TestBookSelectorWraps(t *testing.T) {
	m, _ := setupModel(t)
	m = press(m, switchTo, tabKey, tabKey, tabKey)
	require.Equal(t, fieldBook, m.focus)

	m = press(m, left)
	assert.Equal(t, len(m.catalog)-1, m.book)
	m = press(m, right)
	assert.Equal(t, 0, m.book)
	assert.Contains(t, m.View(), bookstore.NoSelectionLabel)
}

func TestPriceInput(t *testing.T) {
	m, _ := setupModel(t)
	m = press(m, switchTo, shiftTab)
	require.Equal(t, fieldPrice, m.focus)
	assert.Equal(t, "1", m.price.Value())

	m = press(m, up, up)
	assert.Equal(t, "2001", m.price.Value())

	m = press(m, down, down, down)
	assert.Equal(t, "1", m.price.Value(), "price never drops below the minimum")

	m = press(m, typeText("x"))
	assert.Equal(t, "1", m.price.Value(), "non-digits are ignored")
	m = press(m, typeText("5"))
	assert.Equal(t, "15", m.price.Value())
}

func TestQuitAndHelp(t *testing.T) {
	m, _ := setupModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.help.ShowAll)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestStatus(t *testing.T) {
	s := NewStatus()
	_, ok := s.Notice()
	assert.False(t, ok)

	s.Warn("careful")
	s.Success("done")
	n, ok := s.Notice()
	require.True(t, ok)
	assert.Equal(t, bookstore.Notice{Level: bookstore.LevelSuccess, Text: "done"}, n)

	s.Refresh()
	assert.Equal(t, 1, s.refreshes)

	s.Clear()
	_, ok = s.Notice()
	assert.False(t, ok)
}
