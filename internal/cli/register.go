package cli

import (
	"github.com/spf13/cobra"
)

func newRegisterCmd(a *app) *cobra.Command {
	var name, address, phone string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new customer",
		Long: `Register inserts a customer. The database assigns the next customer id.
Address and phone may be left empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(a.flowSurface(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			c, err := s.service.Register(cmd.Context(), s.state, name, address, phone)
			if err != nil {
				return flowFailed(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name (required)")
	cmd.Flags().StringVar(&address, "address", "", "customer address")
	cmd.Flags().StringVar(&phone, "phone", "", "customer phone number")
	return cmd
}
