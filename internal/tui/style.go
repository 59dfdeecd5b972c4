package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/madang/internal/bookstore"
)

var (
	primaryColor   = lipgloss.Color("#8B5CF6")
	secondaryColor = lipgloss.Color("#06B6D4")
	accentColor    = lipgloss.Color("#10B981")
	warnColor      = lipgloss.Color("#F59E0B")
	errorColor     = lipgloss.Color("#EF4444")

	bgDark  = lipgloss.Color("#0F172A")
	bgLight = lipgloss.Color("#334155")

	textPrimary = lipgloss.Color("#F8FAFC")
	textMuted   = lipgloss.Color("#94A3B8")
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(bgLight).
				Foreground(textMuted).
				Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Width(10)

	focusedLabelStyle = labelStyle.
				Foreground(secondaryColor).
				Bold(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Background(secondaryColor).
			Foreground(bgDark).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(bgLight).
			Padding(0, 1)

	statusStyles = map[bookstore.Level]lipgloss.Style{
		bookstore.LevelError:   lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		bookstore.LevelWarn:    lipgloss.NewStyle().Foreground(warnColor).Bold(true),
		bookstore.LevelInfo:    lipgloss.NewStyle().Foreground(secondaryColor),
		bookstore.LevelSuccess: lipgloss.NewStyle().Foreground(accentColor).Bold(true),
	}
)
