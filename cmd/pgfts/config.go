package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pthm/pgfts/internal/cli"
)

var configShowSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
	Example: `  # Show effective configuration
  pgfts config show

  # Show configuration with source file path
  pgfts config show --source`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfig(cmd.OutOrStdout(), cfg, configPath, configShowSource)
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowSource, "source", false, "show config file source")
	configCmd.AddCommand(configShowCmd)
}

// writeConfig prints c as YAML with secrets masked.
func writeConfig(w io.Writer, c *cli.Config, path string, showSource bool) error {
	if showSource {
		if path != "" {
			_, _ = fmt.Fprintf(w, "Config file: %s\n\n", path)
		} else {
			_, _ = fmt.Fprint(w, "Config file: (none, using defaults)\n\n")
		}
	}

	out, err := yaml.Marshal(c.Redacted())
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
