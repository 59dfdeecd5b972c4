package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/madang"

// Version is the release version. Builds override it with
// -ldflags "-X github.com/mesh-intelligence/madang/internal/cli.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the madang version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "madang v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
