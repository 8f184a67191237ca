package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/punchclock/internal/cli"
	"github.com/alexanderramin/punchclock/internal/config"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/alexanderramin/punchclock/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var fatal *domain.FatalError
		if errors.As(err, &fatal) {
			printRestoreHint(fatal.Path)
		}
		os.Exit(1)
	}
}

func run() error {
	rcPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	rc, err := config.Load(rcPath)
	if err != nil {
		return err
	}
	dataDir, err := rc.ResolveDataDir()
	if err != nil {
		return err
	}

	store, err := storage.Open(dataDir)
	if err != nil {
		return err
	}

	app := &cli.App{
		Punch:   service.NewPunchService(store),
		Reports: service.NewReportService(store, nil),
		Config:  service.NewConfigService(store),
		Import:  service.NewImportService(store),

		Store:  store,
		RC:     rc,
		RCPath: rcPath,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// printRestoreHint points at the newest backup when the document itself is
// beyond automatic help.
func printRestoreHint(docPath string) {
	backups, err := storage.ListBackups(docPath)
	if err != nil || len(backups) == 0 {
		fmt.Fprintln(os.Stderr, "No backups found; the document must be repaired by hand.")
		return
	}
	fmt.Fprintf(os.Stderr, "The document is not modified automatically. To restore the most recent backup:\n")
	fmt.Fprintf(os.Stderr, "  cp %s %s\n", backups[0], docPath)
}
