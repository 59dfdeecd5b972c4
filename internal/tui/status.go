package tui

import "github.com/mesh-intelligence/madang/internal/bookstore"

// Status is the status line under the tabs. It is the bookstore.Surface of an
// interactive session and holds the latest message only.
type Status struct {
	notice    bookstore.Notice
	shown     bool
	refreshes int
}

// NewStatus returns an empty status line.
func NewStatus() *Status {
	return &Status{}
}

func (s *Status) Error(msg string)   { s.set(bookstore.LevelError, msg) }
func (s *Status) Warn(msg string)    { s.set(bookstore.LevelWarn, msg) }
func (s *Status) Info(msg string)    { s.set(bookstore.LevelInfo, msg) }
func (s *Status) Success(msg string) { s.set(bookstore.LevelSuccess, msg) }

// Refresh counts redraw requests; the model clears consumed inputs when the
// count moves.
func (s *Status) Refresh() { s.refreshes++ }

func (s *Status) set(level bookstore.Level, msg string) {
	s.notice = bookstore.Notice{Level: level, Text: msg}
	s.shown = true
}

// Notice returns the message on display, if any.
func (s *Status) Notice() (bookstore.Notice, bool) {
	return s.notice, s.shown
}

// Clear drops the message on display.
func (s *Status) Clear() {
	s.notice = bookstore.Notice{}
	s.shown = false
}
