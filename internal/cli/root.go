package cli

import (
	"github.com/alexanderramin/punchclock/internal/config"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/alexanderramin/punchclock/internal/storage"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the machine-local configuration they resolve defaults from.
type App struct {
	Punch   service.PunchService
	Reports service.ReportService
	Config  service.ConfigService
	Import  service.ImportService

	Store  *storage.Store
	RC     config.Config
	RCPath string

	// IsInteractive reports whether stdin is a terminal; the watch view
	// and the setup wizard refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "punchclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "punchclock",
		Short:         "Per-project work-session tracking with shared-document storage",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newBreakCmd(app),
		newResumeCmd(app),
		newEndCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newReportCmd(app),
		newListCmd(app),
		newConfigCmd(app),
		newImportCmd(app),
		newBackupsCmd(app),
	)

	return root
}

// resolveAccount picks the account for a command: the --account flag when
// given, otherwise the configured default.
func (app *App) resolveAccount(flag string) (domain.AccountID, error) {
	raw := flag
	if raw == "" {
		raw = app.RC.DefaultAccount
	}
	if raw == "" {
		return "", &domain.ValidationError{Field: "account", Reason: "no --account given and no default account configured (run: punchclock config setup)"}
	}
	return domain.ParseAccountID(raw)
}
