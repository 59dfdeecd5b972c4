package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/madang/internal/tui"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal UI",
		Long: `UI opens the Lookup and Register / Order tabs. Logs are written to log.file
when one is configured and discarded otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := tui.NewStatus()
			s, err := a.openSession(status, nil)
			if err != nil {
				return err
			}
			defer s.close()

			s.log.Info("interactive session started")
			if err := tui.Run(cmd.Context(), s.service, s.state, status); err != nil {
				return wrapExitError(exitSysError, "terminal UI", err)
			}
			s.log.Info("interactive session ended")
			return nil
		},
	}
}
