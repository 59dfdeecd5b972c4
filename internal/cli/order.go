package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/madang/pkg/types"
)

func newOrderCmd(a *app) *cobra.Command {
	var (
		customer string
		bookID   int64
		price    int64
	)
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Record a purchase for a customer",
		Long: `Order looks the customer up by name, then records a purchase of the book
with the given id at the given price, dated today. The price defaults to the
configured minimum.

Example:
  madang order --customer 김연경 --book 5 --price 15000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if customer == "" {
				return fmt.Errorf("--customer is required")
			}

			surface := a.flowSurface(cmd)
			s, err := a.openSession(surface, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()
			ctx := cmd.Context()

			res, err := s.service.Lookup(ctx, s.state, customer)
			if err != nil {
				return flowFailed(err)
			}
			if !res.Found {
				return flowFailed(types.ErrNoCustomer)
			}

			catalog := s.service.Catalog(ctx)
			if surface.failed() {
				return flowFailed(fmt.Errorf("catalog unavailable"))
			}
			idx := catalog.IndexOf(bookID)
			if idx == 0 && cmd.Flags().Changed("book") {
				surface.Warn(fmt.Sprintf("Book %d is not in the catalog.", bookID))
				return flowFailed(types.ErrNoBook)
			}

			if !cmd.Flags().Changed("price") {
				price = s.service.Pricing().Min
			}
			order, err := s.service.PlaceOrder(ctx, s.state, catalog.Entry(idx), price)
			if err != nil {
				return flowFailed(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), order)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&customer, "customer", "", "customer name (required)")
	cmd.Flags().Int64Var(&bookID, "book", 0, "book id as listed by the books command")
	cmd.Flags().Int64Var(&price, "price", 0, "sale price (default: the configured minimum)")
	return cmd
}
