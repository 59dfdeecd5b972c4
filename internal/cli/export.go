package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Dump every table to JSONL files",
		Long: `Export writes book.jsonl, customer.jsonl and orders.jsonl into dir, one JSON
object per row. Existing files are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runExport,
	}
}

func (a *app) runExport(cmd *cobra.Command, args []string) error {
	log, closeLog, err := a.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	backend, err := a.attachBackend()
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Detach(); err != nil {
			log.Error("closing database", "error", err)
		}
	}()

	counts, err := backend.Export(cmd.Context(), args[0])
	if err != nil {
		return wrapExitError(exitSysError, "export", err)
	}
	log.Debug("export finished", "dir", args[0], "tables", len(counts))

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), counts)
	}
	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, "TABLE\tROWS\tFILE")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", c.Table, c.Rows, c.File)
	}
	return tw.Flush()
}
