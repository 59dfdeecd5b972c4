package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// textSurface reports flow messages on a terminal. Errors and warnings go to
// errOut; info and success messages go to out.
type textSurface struct {
	out    io.Writer
	errOut io.Writer

	errors   int
	warnings int
}

func newTextSurface(out, errOut io.Writer) *textSurface {
	return &textSurface{out: out, errOut: errOut}
}

func (s *textSurface) Error(msg string) {
	s.errors++
	fmt.Fprintln(s.errOut, "error:", msg)
}

func (s *textSurface) Warn(msg string) {
	s.warnings++
	fmt.Fprintln(s.errOut, "warning:", msg)
}

func (s *textSurface) Info(msg string)    { fmt.Fprintln(s.out, msg) }
func (s *textSurface) Success(msg string) { fmt.Fprintln(s.out, msg) }

// Refresh has nothing to redraw on a line-oriented terminal.
func (s *textSurface) Refresh() {}

// failed reports whether any error was surfaced.
func (s *textSurface) failed() bool {
	return s.errors > 0
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// newTable returns a tabwriter for column output; callers must Flush.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
