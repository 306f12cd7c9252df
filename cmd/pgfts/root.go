package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pthm/pgfts/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     *logrus.Logger

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "pgfts",
	Short: "Typed PostgreSQL full-text search",
	Long: `pgfts - Typed PostgreSQL full-text search

pgfts declares PostgreSQL's tsvector and tsquery types, text search functions
and operators as typed Go expressions. This tool lists those declarations,
renders search SQL, and checks them against a live database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			logger = cli.NewLogger(os.Stderr, "info", "text")
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		logger = cli.NewLogger(os.Stderr, logLevel(cfg.Log.Level), cfg.Log.Format)
		logger.WithField("config_file", configPath).Debug("configuration loaded")

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupSearch  = "search"
	groupUtility = "utility"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover pgfts.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupSearch, Title: "Search:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	doctorCmd.GroupID = groupSearch
	catalogCmd.GroupID = groupSearch
	renderCmd.GroupID = groupSearch
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(renderCmd)

	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// logLevel applies -v and -q on top of the configured level.
func logLevel(configured string) string {
	switch {
	case quiet:
		return "error"
	case verbose > 0:
		return "debug"
	default:
		return configured
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveBool returns true if any of the provided values is true.
// Used for boolean flags where any true value should win.
func resolveBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
