package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mager/libex/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Long: `Starts the stateful dashboard backend. The feature tables are loaded
once at startup and stay immutable; every selection event recomputes the
filtered album view from them.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	if dataDir != "" {
		// The fx graph reads config from the environment only.
		os.Setenv("LIBEX_DATADIR", dataDir)
	}
	server.New().Run()
}
