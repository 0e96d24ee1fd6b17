package feature

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mager/libex/libex"
	"github.com/mager/libex/logger"
)

// libraryFixture is a small artist set with enough variety for the default
// eight clusters.
func libraryFixture() []libex.Artist {
	genres := [][]string{
		{"rock", "indie rock"},
		{"rock", "garage rock"},
		{"techno", "minimal techno"},
		{"techno", "acid techno"},
		{"jazz", "bebop"},
		{"jazz", "free jazz"},
		{"folk", "freak folk"},
		{"folk"},
		{"ambient", "drone"},
		{"ambient"},
		{"hip hop", "boom bap"},
		{"hip hop"},
	}

	artists := make([]libex.Artist, len(genres))
	for i, g := range genres {
		artists[i] = artist(fmt.Sprintf("artist-%02d", i), g...)
	}
	return artists
}

func TestArtistFeaturesDeterministic(t *testing.T) {
	log, _ := logger.NewTestLogger()
	builder := NewBuilder(log, DefaultConfig())

	first, err := builder.ArtistFeatures(libraryFixture())
	require.NoError(t, err)
	second, err := builder.ArtistFeatures(libraryFixture())
	require.NoError(t, err)

	// Same input, same seed: identical cluster labels and coordinates.
	assert.Equal(t, first, second)
}

func TestArtistFeaturesRows(t *testing.T) {
	log, _ := logger.NewTestLogger()
	builder := NewBuilder(log, DefaultConfig())

	rows, err := builder.ArtistFeatures(libraryFixture())
	require.NoError(t, err)
	require.Len(t, rows, 12)

	for _, row := range rows {
		assert.NotEmpty(t, row.GenreCluster, "cluster label for %s", row.Name)
		assert.NotEmpty(t, row.GenreSpecific, "specific genre for %s", row.Name)
	}
}

func TestArtistFeaturesTooFewArtists(t *testing.T) {
	log, _ := logger.NewTestLogger()
	builder := NewBuilder(log, DefaultConfig())

	_, err := builder.ArtistFeatures([]libex.Artist{
		artist("a", "rock"),
		artist("b", "jazz"),
	})
	assert.Error(t, err)
}

func TestArtistFeaturesNoGenres(t *testing.T) {
	log, _ := logger.NewTestLogger()
	builder := NewBuilder(log, DefaultConfig())

	var artists []libex.Artist
	for i := 0; i < 10; i++ {
		artists = append(artists, artist(fmt.Sprintf("a%d", i)))
	}

	_, err := builder.ArtistFeatures(artists)
	assert.Error(t, err)
}

func TestAlbumFeaturesDropsUnanalyzed(t *testing.T) {
	log, _ := logger.NewTestLogger()
	builder := NewBuilder(log, DefaultConfig())

	albums := []libex.Album{
		{
			URI:    "spotify:album:ok",
			Name:   "analyzed",
			Tracks: []libex.Track{{URI: "t1", DurationMs: 100}},
		},
		{
			URI:    "spotify:album:bad",
			Name:   "unanalyzed",
			Tracks: []libex.Track{{URI: "t2", DurationMs: 100}},
		},
	}
	features := []libex.TrackFeatures{
		{TrackURI: "t1", Tempo: ptr(95)},
		{TrackURI: "t2"},
	}

	rows := builder.AlbumFeatures(albums, features)
	require.Len(t, rows, 1)
	assert.Equal(t, "spotify:album:ok", rows[0].URI)
}
