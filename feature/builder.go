// Package feature derives the two flat tables the dashboards consume: one
// row per artist with genre cluster and embedding coordinates, and one row
// per album with aggregated audio descriptors.
package feature

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/mager/libex/libex"
	"github.com/mager/libex/util"
)

type Config struct {
	// Clusters is the number of genre clusters to form.
	Clusters int
	// Seed fixes the cluster initialization and the t-SNE starting solution
	// so repeated runs over the same library produce identical tables.
	Seed int64
	// Perplexity is the t-SNE neighborhood size.
	Perplexity float64
	// LabelGenres is how many top genre tags name each cluster.
	LabelGenres int
}

func DefaultConfig() Config {
	return Config{
		Clusters:    8,
		Seed:        42,
		Perplexity:  30,
		LabelGenres: 2,
	}
}

type Builder struct {
	log *zap.SugaredLogger
	cfg Config
}

func NewBuilder(log *zap.SugaredLogger, cfg Config) *Builder {
	return &Builder{log: log, cfg: cfg}
}

// ArtistFeatures runs genre vectorization, clustering, and embedding over
// the full artist set and returns the artists_features table. It fails when
// there are fewer artists than clusters or no genre tags at all.
func (b *Builder) ArtistFeatures(artists []libex.Artist) ([]libex.ArtistFeature, error) {
	if len(artists) == 0 {
		return nil, errors.New("no artists to build features for")
	}

	space := NewGenreSpace(artists)
	if len(space.Genres) == 0 {
		return nil, errors.New("no genre tags across any artist")
	}
	b.log.Infow("Built genre space",
		"artists", len(artists), "genres", len(space.Genres))

	rng := rand.New(rand.NewSource(b.cfg.Seed))
	assignments, centers, err := clusterRows(space, b.cfg.Clusters, rng)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(centers))
	for ci, center := range centers {
		labels[ci] = clusterLabel(space, center, b.cfg.LabelGenres)
	}

	// The embedding library reads the shared source for its starting
	// solution, so it is seeded here rather than through an explicit rng.
	rand.Seed(b.cfg.Seed)
	coords := embedRows(space, b.cfg.Perplexity)

	rows := make([]libex.ArtistFeature, len(artists))
	for i, a := range artists {
		rows[i] = libex.ArtistFeature{
			URI:           a.URI,
			Name:          a.Name,
			Popularity:    a.Popularity,
			Followers:     a.Followers,
			Image:         util.PrimaryImage(a.Images),
			GenreCluster:  labels[assignments[i]],
			GenreSpecific: space.MostSpecific(i),
			GenreX:        coords[i][0],
			GenreY:        coords[i][1],
		}
	}

	return rows, nil
}

// AlbumFeatures aggregates per-track audio features into the albums_features
// table. Albums with no usable descriptors at all are dropped, not surfaced
// as errors.
func (b *Builder) AlbumFeatures(albums []libex.Album, features []libex.TrackFeatures) []libex.AlbumFeature {
	byTrack := make(map[string]libex.TrackFeatures, len(features))
	for _, f := range features {
		byTrack[f.TrackURI] = f
	}

	rows := make([]libex.AlbumFeature, 0, len(albums))
	dropped := 0
	for _, album := range albums {
		tracks := make([]libex.TrackFeatures, len(album.Tracks))
		for i, t := range album.Tracks {
			tracks[i] = byTrack[t.URI]
			tracks[i].TrackURI = t.URI
		}

		row, ok := AggregateAlbum(album, tracks)
		if !ok {
			b.log.Debugw("Dropping unanalyzed album", "album", album.Name)
			dropped++
			continue
		}
		rows = append(rows, row)
	}

	if dropped > 0 {
		b.log.Infow("Dropped unanalyzed albums", "count", dropped)
	}

	return rows
}
