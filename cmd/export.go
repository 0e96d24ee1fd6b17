package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mager/libex/dashboard"
	"github.com/mager/libex/libex"
	"github.com/mager/libex/snapshot"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a self-contained dashboard HTML file",
	Long: `Renders both feature tables into a single HTML file with all
interactivity embedded client-side. The file needs no backend.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "dashboard.html", "output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store := snapshot.New(cfg.DataDir)

	var artists []libex.ArtistFeature
	if err := store.Load(snapshot.ArtistFeatures, &artists); err != nil {
		return err
	}
	var albums []libex.AlbumFeature
	if err := store.Load(snapshot.AlbumFeatures, &albums); err != nil {
		return err
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("error creating '%s': %w", exportOut, err)
	}
	defer f.Close()

	if err := dashboard.Export(f, dashboard.Prepare(artists, albums)); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", exportOut)
	return nil
}
