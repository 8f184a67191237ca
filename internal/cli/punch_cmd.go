package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "start PROJECT",
		Short: "Clock in on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			var session *domain.Session
			err = withBusyRetry(func() error {
				var e error
				session, e = app.Punch.Start(context.Background(), account, args[0])
				return e
			})
			if err != nil {
				return err
			}
			fmt.Printf("Started %s on %s at %s\n",
				formatter.Bold(session.Project), session.Account, formatter.Clock(session.Start))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}

func newBreakCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "break",
		Short: "Pause the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			var session *domain.Session
			err = withBusyRetry(func() error {
				var e error
				session, e = app.Punch.Break(context.Background(), account)
				return e
			})
			if err != nil {
				return err
			}
			fmt.Printf("On break from %s (break #%d)\n", formatter.Bold(session.Project), len(session.Breaks))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}

func newResumeCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume work after a break",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			var session *domain.Session
			err = withBusyRetry(func() error {
				var e error
				session, e = app.Punch.Resume(context.Background(), account)
				return e
			})
			if err != nil {
				return err
			}
			fmt.Printf("Back on %s\n", formatter.Bold(session.Project))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}

func newEndCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "end",
		Short: "Clock out and record the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			var session *domain.Session
			err = withBusyRetry(func() error {
				var e error
				session, e = app.Punch.End(context.Background(), account)
				return e
			})
			if err != nil {
				return err
			}
			fmt.Printf("Ended %s: %s → %s, %d break(s), worked %s\n",
				formatter.Bold(session.Project),
				formatter.Clock(session.Start),
				formatter.Clock(*session.End),
				len(session.Breaks),
				formatter.FormatMinutes(session.NetMinutes(*session.End)))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current punch state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			status, err := app.Punch.Status(context.Background(), account)
			if err != nil {
				return err
			}

			fmt.Printf("%s  %s\n", formatter.StatePill(status.State), formatter.Dim(string(account)))
			if status.Session == nil {
				return nil
			}
			s := status.Session
			fmt.Printf("Project:  %s\n", formatter.Bold(s.Project))
			fmt.Printf("Since:    %s\n", formatter.Clock(s.Start))
			fmt.Printf("Worked:   %s\n", formatter.FormatMinutes(status.WorkedMinutes))
			if len(s.Breaks) > 0 {
				fmt.Printf("Breaks:\n")
				for i, b := range s.Breaks {
					end := "(ongoing)"
					if b.End != nil {
						end = formatter.Clock(*b.End)
					}
					fmt.Printf("  %d. %s – %s\n", i+1, formatter.Clock(b.Start), end)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	return cmd
}
