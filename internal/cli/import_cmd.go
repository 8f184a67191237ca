package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Merge estimated sessions from an evidence file",
		Long: `Import session-shaped records produced by an external work-time
estimator (for example a commit-history analyzer). Records already present
in the document are skipped, so re-running an import is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *service.ImportResult
			err := withBusyRetry(func() error {
				var e error
				result, e = app.Import.ImportEvidence(context.Background(), args[0], dryRun)
				return e
			})
			if err != nil {
				return err
			}

			verb := "Imported"
			if dryRun {
				verb = "Would import"
			}
			fmt.Printf("%s %d session(s), %s total", verb, result.Imported, formatter.FormatMinutes(result.TotalMinutes))
			if result.SkippedDuplicates > 0 {
				fmt.Printf(", skipped %d duplicate(s)", result.SkippedDuplicates)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and report without writing")
	return cmd
}
