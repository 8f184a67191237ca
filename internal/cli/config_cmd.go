package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/config"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Account settings and machine setup",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
		newConfigSetupCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an account's reporting settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			cfg, err := app.Config.Get(context.Background(), account)
			if err != nil {
				return err
			}
			closing := "month-end closing"
			if cfg.ClosingDay == domain.ClosingMid {
				closing = "15th closing"
			}
			fmt.Printf("Settings for %s:\n", formatter.Bold(string(account)))
			fmt.Printf("  Closing day:    %d (%s)\n", cfg.ClosingDay, closing)
			fmt.Printf("  Standard hours: %g per day\n", cfg.StandardHoursPerDay)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	var accountFlag string
	var closingDay int
	var standardHours float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change an account's reporting settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			cfg := domain.AccountConfig{ClosingDay: closingDay, StandardHoursPerDay: standardHours}
			err = withBusyRetry(func() error {
				return app.Config.Set(context.Background(), account, cfg)
			})
			if err != nil {
				return err
			}
			fmt.Printf("Updated settings for %s: closing day %d, %g standard hours/day\n",
				account, cfg.ClosingDay, cfg.StandardHoursPerDay)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	cmd.Flags().IntVar(&closingDay, "closing-day", domain.ClosingMonthEnd, "Closing day, 15 or 31")
	cmd.Flags().Float64Var(&standardHours, "standard-hours", 8, "Standard working hours per day")
	_ = cmd.MarkFlagRequired("closing-day")
	return cmd
}

func newConfigSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively set the data directory and default account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("setup needs an interactive terminal; edit %s directly instead", app.RCPath)
			}

			dataDir := app.RC.DataDir
			if dataDir == "" {
				if def, err := config.DefaultDataDir(); err == nil {
					dataDir = def
				}
			}
			defaultAccount := app.RC.DefaultAccount

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Data directory (put it inside your sync folder to share across machines)").
						Value(&dataDir).
						Validate(func(s string) error {
							if s == "" {
								return fmt.Errorf("data directory is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Default account id (blank for none)").
						Value(&defaultAccount).
						Validate(func(s string) error {
							if s == "" {
								return nil
							}
							_, err := domain.ParseAccountID(s)
							return err
						}),
				),
			).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			rc := config.Config{DataDir: dataDir, DefaultAccount: defaultAccount}
			if err := rc.Save(app.RCPath); err != nil {
				return err
			}
			if err := os.MkdirAll(dataDir, 0o700); err != nil {
				return fmt.Errorf("creating data directory: %w", err)
			}

			fmt.Printf("Saved %s\n", app.RCPath)
			fmt.Printf("  Data directory:  %s\n", dataDir)
			if defaultAccount != "" {
				fmt.Printf("  Default account: %s\n", defaultAccount)
			}
			fmt.Println("Restart punchclock to pick up the new location.")
			return nil
		},
	}
}
