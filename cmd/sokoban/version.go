package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lawkern/sokoban/config"
)

// version is stamped by the linker on release builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		revision := "unknown"
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					revision = setting.Value
				}
			}
		}
		fmt.Printf("sokoban %s (%s)\n", version, revision)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Writes the built-in configuration document to stdout. Save it as
sokoban.yaml next to the binary, or under the user config directory as
sokoban/sokoban.yaml, and edit from there.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.EmbeddedDefaults())
	},
}
