package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live status view with a running work timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch needs an interactive terminal; use: punchclock status")
			}
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newWatchModel(app.Punch, account)).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}
