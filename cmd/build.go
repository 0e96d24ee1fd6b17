package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mager/libex/feature"
	"github.com/mager/libex/libex"
	"github.com/mager/libex/logger"
	"github.com/mager/libex/snapshot"
)

var (
	clusterCount int
	seed         int64
	perplexity   float64
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Derive the artist and album feature tables",
	Long: `Reads the raw snapshots and recomputes both feature tables from
scratch: genre TF-IDF weighting, k-means clustering, 2-D embedding, and
per-album audio descriptor means. Outputs replace the previous tables
wholesale.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().IntVar(&clusterCount, "clusters", 8, "number of genre clusters")
	buildCmd.Flags().Int64Var(&seed, "seed", 42, "random seed for clustering and embedding")
	buildCmd.Flags().Float64Var(&perplexity, "perplexity", 30, "t-SNE perplexity")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := logger.ProvideLogger()
	store := snapshot.New(cfg.DataDir)

	var artists []libex.Artist
	if err := store.Load(snapshot.Artists, &artists); err != nil {
		return err
	}
	var albums []libex.Album
	if err := store.Load(snapshot.Albums, &albums); err != nil {
		return err
	}
	var features []libex.TrackFeatures
	if err := store.Load(snapshot.Features, &features); err != nil {
		return err
	}

	builderCfg := feature.DefaultConfig()
	builderCfg.Clusters = clusterCount
	builderCfg.Seed = seed
	builderCfg.Perplexity = perplexity
	builder := feature.NewBuilder(log, builderCfg)

	artistRows, err := builder.ArtistFeatures(artists)
	if err != nil {
		return err
	}
	if err := store.Save(snapshot.ArtistFeatures, artistRows); err != nil {
		return err
	}
	log.Infow("Wrote artist features", "rows", len(artistRows))

	albumRows := builder.AlbumFeatures(albums, features)
	if err := store.Save(snapshot.AlbumFeatures, albumRows); err != nil {
		return err
	}
	log.Infow("Wrote album features", "rows", len(albumRows))

	fmt.Println("done")
	return nil
}
