package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/timeplan/internal/cli"
	"github.com/alexanderramin/timeplan/internal/cli/formatter"
	"github.com/alexanderramin/timeplan/internal/db"
	"github.com/alexanderramin/timeplan/internal/repository"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.timeplan/timeplan.db
	dbPath := os.Getenv("TIMEPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".timeplan", "timeplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening plan store: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Plans: repository.NewSQLitePlanRepo(database),
	}

	rootCmd := cli.NewRootCmd(app)

	var plain bool
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colored output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		formatter.SetColorEnabled(!plain && isatty.IsTerminal(os.Stdout.Fd()))
	}

	return rootCmd.Execute()
}
