package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mager/libex/config"
)

var dataDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "libex",
	Short: "Explore a Spotify library as interactive dashboards",
	Long: `libex fetches a user's followed artists, their albums, and per-track
audio features from the Spotify Web API, derives genre clusters and album
feature tables, and renders them as interactive dashboards.

The stages run in order: login, fetch, build, then serve or export.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&dataDir, "data-dir", "", `directory for JSON snapshots (default "data")`)
}

// loadConfig reads the environment config and applies flag overrides.
func loadConfig() config.Config {
	cfg := config.ProvideConfig()
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg
}
