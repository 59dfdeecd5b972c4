package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBooksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the book catalog",
		Args:  cobra.NoArgs,
		RunE:  a.runBooks,
	}
}

func (a *app) runBooks(cmd *cobra.Command, args []string) error {
	surface := newTextSurface(cmd.OutOrStdout(), cmd.ErrOrStderr())
	s, err := a.openSession(surface, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.close()

	books := s.service.Catalog(cmd.Context()).Books()
	if surface.failed() {
		return flowFailed(fmt.Errorf("catalog unavailable"))
	}

	if a.flags.jsonMode {
		if books == nil {
			return printJSON(cmd.OutOrStdout(), []any{})
		}
		return printJSON(cmd.OutOrStdout(), books)
	}

	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, "BOOKID\tBOOKNAME")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\n", b.BookID, b.BookName)
	}
	return tw.Flush()
}
