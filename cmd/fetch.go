package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	spot "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"

	"github.com/mager/libex/libex"
	"github.com/mager/libex/logger"
	"github.com/mager/libex/snapshot"
	"github.com/mager/libex/spotify"
)

var albumPageSize int

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the library from Spotify into JSON snapshots",
	Long: `Fetches the user's followed artists, every artist's albums, full album
details, and per-track audio features, writing each collection as a JSON
snapshot. Calls run sequentially with no retries; the first failure aborts
the run.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&albumPageSize, "page-size", 50, "page size for album listing")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := logger.ProvideLogger()
	store := snapshot.New(cfg.DataDir)

	client, err := spotify.ProvideSpotify(cfg, log)
	if err != nil {
		return err
	}

	ctx := context.Background()

	artists, err := client.FollowedArtists(ctx)
	if err != nil {
		return err
	}
	log.Infow("Fetched followed artists", "count", len(artists))
	if err := store.Save(snapshot.Artists, artists); err != nil {
		return err
	}

	albumIDs, err := fetchAlbumIDs(ctx, client, artists, log)
	if err != nil {
		return err
	}

	albums, err := client.AlbumDetails(ctx, albumIDs)
	if err != nil {
		return err
	}
	log.Infow("Fetched albums", "count", len(albums))
	if err := store.Save(snapshot.Albums, albums); err != nil {
		return err
	}

	var trackURIs []string
	for _, album := range albums {
		for _, t := range album.Tracks {
			trackURIs = append(trackURIs, t.URI)
		}
	}

	features, err := client.AudioFeatures(ctx, trackURIs)
	if err != nil {
		return err
	}
	log.Infow("Fetched audio features", "tracks", len(features))
	if err := store.Save(snapshot.Features, features); err != nil {
		return err
	}

	fmt.Println("done")
	return nil
}

// fetchAlbumIDs walks every followed artist's album list, one artist at a
// time, deduplicating albums shared between followed artists.
func fetchAlbumIDs(ctx context.Context, client *spotify.SpotifyClient, artists []libex.Artist, log *zap.SugaredLogger) ([]spot.ID, error) {
	seen := make(map[spot.ID]bool)
	var ids []spot.ID

	for i, a := range artists {
		artistIDs, err := client.ArtistAlbumIDs(ctx, spotify.ExtractID(spot.URI(a.URI)), albumPageSize)
		if err != nil {
			return nil, err
		}

		for _, id := range artistIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}

		log.Infow("Fetched album list",
			"artist", a.Name, "progress", fmt.Sprintf("%d/%d", i+1, len(artists)),
			"albums", len(artistIDs))
	}

	return ids, nil
}
