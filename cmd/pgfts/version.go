package main

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/pthm/pgfts/internal/update"
	"github.com/pthm/pgfts/internal/version"
)

func init() {
	// If version wasn't set via ldflags, try to get it from Go module info.
	// This works when installed via "go install github.com/pthm/pgfts/cmd/pgfts@version".
	if version.Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				version.Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if len(setting.Value) >= 7 {
						version.Commit = setting.Value[:7]
					} else {
						version.Commit = setting.Value
					}
				case "vcs.time":
					version.Date = setting.Value
				}
			}
		}
	}
}

var (
	versionShort bool
	versionCheck bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionShort {
			_, _ = fmt.Fprintln(out, version.Short())
		} else {
			_, _ = fmt.Fprintln(out, version.Info())
		}

		if versionCheck {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			info, err := update.CheckWithCache(ctx)
			if err != nil {
				// An offline machine is not an error for the version command.
				logger.WithError(err).Debug("update check failed")
				return
			}
			printUpdate(out, info)
		}
	},
}

func printUpdate(w io.Writer, info *update.Info) {
	if !info.UpdateAvailable {
		return
	}
	_, _ = fmt.Fprintf(w, "A newer release is available: %s (current %s)\n", info.LatestVersion, info.CurrentVersion)
	if info.ReleaseURL != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", info.ReleaseURL)
	}
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}
