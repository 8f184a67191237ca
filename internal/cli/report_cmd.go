package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate recorded sessions",
	}

	cmd.AddCommand(
		newReportDailyCmd(app),
		newReportProjectCmd(app),
		newReportMonthlyCmd(app),
	)

	return cmd
}

func newReportDailyCmd(app *App) *cobra.Command {
	var accountFlag, date string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Worked minutes and overtime for one date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			r, err := app.Reports.Daily(context.Background(), account, date)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Daily report"))
			fmt.Printf("Account:  %s\n", account)
			fmt.Printf("Date:     %s\n", r.Date)
			fmt.Printf("Total:    %s (%s)\n", formatter.FormatMinutes(r.TotalMinutes), formatter.FormatHours(r.TotalMinutes))
			fmt.Printf("Standard: %s\n", formatter.FormatMinutes(r.StandardMinutes))
			fmt.Printf("Overtime: %s\n", formatter.Overtime(r.OvertimeMinutes))

			if len(r.Projects) > 0 {
				fmt.Println()
				rows := make([][]string, 0, len(r.Projects))
				for _, p := range sortedKeys(r.Projects) {
					rows = append(rows, []string{p, formatter.FormatMinutes(r.Projects[p])})
				}
				fmt.Print(formatter.RenderTable([]string{"PROJECT", "WORKED"}, rows))
			}

			if verbose && len(r.Sessions) > 0 {
				fmt.Println()
				rows := make([][]string, 0, len(r.Sessions))
				for _, s := range r.Sessions {
					rows = append(rows, []string{
						s.Project,
						formatter.Clock(s.Start),
						formatter.Clock(*s.End),
						fmt.Sprintf("%d", len(s.Breaks)),
						formatter.FormatMinutes(s.NetMinutes(time.Time{})),
					})
				}
				fmt.Print(formatter.RenderTable([]string{"PROJECT", "START", "END", "BREAKS", "WORKED"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List individual sessions")
	return cmd
}

func newReportProjectCmd(app *App) *cobra.Command {
	var accountFlag, from, to string

	cmd := &cobra.Command{
		Use:   "project PROJECT",
		Short: "Per-date totals for one project over a range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}
			r, err := app.Reports.Project(context.Background(), account, args[0], from, to)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Project report"))
			fmt.Printf("Account:  %s\n", account)
			fmt.Printf("Project:  %s\n", formatter.Bold(r.Project))
			fmt.Printf("Sessions: %d\n", r.SessionCount)
			fmt.Printf("Total:    %s (%s)\n", formatter.FormatMinutes(r.TotalMinutes), formatter.FormatHours(r.TotalMinutes))

			if len(r.ByDate) > 0 {
				fmt.Println()
				rows := make([][]string, 0, len(r.ByDate))
				for _, date := range sortedKeys(r.ByDate) {
					rows = append(rows, []string{date, formatter.FormatMinutes(r.ByDate[date])})
				}
				fmt.Print(formatter.RenderTable([]string{"DATE", "WORKED"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	cmd.Flags().StringVar(&from, "from", "", "Start date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "End date YYYY-MM-DD (inclusive)")
	return cmd
}

func newReportMonthlyCmd(app *App) *cobra.Command {
	var accountFlag string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "monthly [YYYY-MM]",
		Short: "Billing-period report with per-project overtime",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(accountFlag)
			if err != nil {
				return err
			}

			year, month := time.Now().Year(), time.Now().Month()
			if len(args) == 1 {
				parsed, perr := time.Parse("2006-01", args[0])
				if perr != nil {
					return &domain.ValidationError{Field: "month", Reason: fmt.Sprintf("%q is not YYYY-MM", args[0])}
				}
				year, month = parsed.Year(), parsed.Month()
			}

			r, err := app.Reports.Monthly(context.Background(), account, year, month)
			if err != nil {
				return err
			}

			closing := "month-end closing"
			if r.Config.ClosingDay == domain.ClosingMid {
				closing = "15th closing"
			}
			fmt.Println(formatter.Header(fmt.Sprintf("Monthly report %s", r.Period.Key())))
			fmt.Printf("Account:      %s\n", account)
			fmt.Printf("Period:       %s (%s)\n", r.Period, closing)
			fmt.Printf("Working days: %d\n", r.WorkingDays)
			fmt.Printf("Total:        %s (%s)\n", formatter.FormatMinutes(r.TotalMinutes), formatter.FormatHours(r.TotalMinutes))
			fmt.Printf("Overtime:     %s\n", formatter.Overtime(r.OvertimeMinutes))

			if len(r.Projects) > 0 {
				fmt.Println()
				rows := make([][]string, 0, len(r.Projects))
				for _, p := range sortedKeys(r.Projects) {
					t := r.Projects[p]
					rows = append(rows, []string{
						p,
						fmt.Sprintf("%d", t.DaysWorked),
						formatter.FormatMinutes(t.Minutes),
						formatter.FormatFracMinutes(t.OvertimeMinutes),
					})
				}
				fmt.Print(formatter.RenderTable([]string{"PROJECT", "DAYS", "WORKED", "OVERTIME"}, rows))
			}

			if verbose && len(r.Days) > 0 {
				fmt.Println()
				fmt.Println(formatter.Header("Daily breakdown"))
				for _, day := range r.Days {
					fmt.Printf("%s  %s", formatter.Bold(day.Date), formatter.FormatMinutes(day.TotalMinutes))
					if day.OvertimeMinutes > 0 {
						fmt.Printf("  (overtime %s)", formatter.Overtime(day.OvertimeMinutes))
					}
					fmt.Println()
					for _, p := range sortedKeys(day.Projects) {
						fmt.Printf("    %s  %s\n", p, formatter.Dim(formatter.FormatMinutes(day.Projects[p])))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account id (default: configured default account)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the per-date breakdown")
	return cmd
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
