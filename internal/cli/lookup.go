package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/madang/internal/bookstore"
	"github.com/mesh-intelligence/madang/pkg/types"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Show a customer's order history",
		Long: `Lookup finds the customer with exactly this name and prints the books they
bought, newest first. When several customers share the name the first one
found is used. Exits 1 when nobody has the name.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runLookup,
	}
}

func (a *app) runLookup(cmd *cobra.Command, args []string) error {
	if args[0] == "" {
		return fmt.Errorf("a customer name is required")
	}

	s, err := a.openSession(a.flowSurface(cmd), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.service.Lookup(cmd.Context(), s.state, args[0])
	if err != nil {
		return flowFailed(err)
	}

	if a.flags.jsonMode {
		if err := printJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	} else if res.Found {
		if err := printHistory(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	}
	if !res.Found {
		return flowFailed(types.ErrNoCustomer)
	}
	return nil
}

// flowSurface routes flow messages. In JSON mode stdout carries only JSON, so
// every message goes to stderr.
func (a *app) flowSurface(cmd *cobra.Command) *textSurface {
	if a.flags.jsonMode {
		return newTextSurface(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	}
	return newTextSurface(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// printHistory renders the caption and the order history table.
func printHistory(w io.Writer, res bookstore.LookupResult) error {
	fmt.Fprintf(w, "Customer ID: %d (%s)\n", res.CustomerID, res.Name)
	if len(res.History) == 0 {
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "BOOKNAME\tORDERDATE\tSALEPRICE")
	for _, h := range res.History {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", h.BookName, h.OrderDate, h.SalePrice)
	}
	return tw.Flush()
}
