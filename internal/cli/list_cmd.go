package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known accounts and projects",
	}

	cmd.AddCommand(
		newListAccountsCmd(app),
		newListProjectsCmd(app),
	)

	return cmd
}

func newListAccountsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List all accounts in the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			accounts, err := app.Reports.Accounts(ctx)
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Println("No accounts recorded yet.")
				return nil
			}
			for _, account := range accounts {
				projects, err := app.Reports.Projects(ctx, account)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s\n", account, formatter.Dim(fmt.Sprintf("(%d projects)", len(projects))))
			}
			return nil
		},
	}
}

func newListProjectsCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List an account's projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			projects, err := app.Reports.Projects(context.Background(), account)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Printf("%s: no projects recorded yet.\n", account)
				return nil
			}
			for _, p := range projects {
				fmt.Println(p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}
