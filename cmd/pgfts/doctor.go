package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/pthm/pgfts"
	"github.com/pthm/pgfts/internal/cli"
	"github.com/pthm/pgfts/internal/doctor"
)

const connectTimeout = 10 * time.Second

var (
	doctorDB           string
	doctorSearchConfig string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks",
	Long: `Check that the database agrees with the declared text search types,
functions and operators, that the configured text search configuration exists,
and that a rendered search predicate executes.`,
	Example: `  # Run health checks
  pgfts doctor --db postgres://localhost/mydb

  # Run with verbose output
  pgfts doctor --db postgres://localhost/mydb --verbose

  # Check a different text search configuration
  pgfts doctor --db postgres://localhost/mydb --search-config simple`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verboseFlag := resolveBool(verbose > 0, cfg.Doctor.Verbose)
		searchConfig := resolveString(doctorSearchConfig, cfg.Search.Config)

		dsn, err := resolveDSN(doctorDB)
		if err != nil {
			return err
		}

		return runDoctor(cmd.Context(), dsn, searchConfig, verboseFlag)
	},
}

func init() {
	f := doctorCmd.Flags()
	f.StringVar(&doctorDB, "db", "", "database URL")
	f.StringVar(&doctorSearchConfig, "search-config", "", "text search configuration to check (default from config)")
}

// resolveDSN returns the flag value, or the DSN built from configuration.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return "", cli.ConfigError("database configuration", err)
	}
	if dsn == "" {
		return "", cli.ConfigError("database URL is required (use --db or set in config)", nil)
	}
	return dsn, nil
}

// openDB opens a database/sql pool over pgx with the text search types
// registered on every connection.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, cli.ConfigError("parsing database URL", err)
	}

	db := stdlib.OpenDB(*connConfig, stdlib.OptionAfterConnect(pgfts.AfterConnect))

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, cli.DBConnectError("connecting to database", err)
	}

	logger.WithField("host", connConfig.Host).Debug("connected to database")
	return db, nil
}

func runDoctor(ctx context.Context, dsn, searchConfig string, verboseFlag bool) error {
	db, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if !quiet {
		fmt.Println("pgfts doctor - Health Check")
	}

	d := doctor.New(db, searchConfig, logger)
	report, err := d.Run(ctx)
	if err != nil {
		return cli.GeneralError("running doctor", err)
	}

	report.Print(os.Stdout, verboseFlag)

	if report.HasErrors() {
		return cli.GeneralError("health checks failed", nil)
	}

	return nil
}
