package cli

import (
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBackupsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backups",
		Short: "List retained document backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backups, err := app.Store.Backups()
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				fmt.Println("No backups yet; one is written before every commit.")
				return nil
			}
			for i, b := range backups {
				marker := "  "
				if i == 0 {
					marker = formatter.StyleGreen.Render("→ ")
				}
				fmt.Printf("%s%s\n", marker, b)
			}
			fmt.Println(formatter.Dim("Restore by copying a backup over " + app.Store.Path() + " while no punchclock is running."))
			return nil
		},
	}
}
