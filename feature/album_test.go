package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mager/libex/libex"
)

func ptr(v float64) *float64 { return &v }

func TestAggregateAlbumMeansSkipNulls(t *testing.T) {
	album := libex.Album{
		URI:        "spotify:album:x",
		Name:       "X",
		ArtistURIs: []string{"spotify:artist:a", "spotify:artist:b"},
		Tracks: []libex.Track{
			{URI: "t1", DurationMs: 1000},
			{URI: "t2", DurationMs: 2000},
			{URI: "t3", DurationMs: 3000},
		},
	}
	tracks := []libex.TrackFeatures{
		{TrackURI: "t1", Danceability: ptr(0.2), Tempo: ptr(120)},
		{TrackURI: "t2", Tempo: ptr(100)},
		{TrackURI: "t3", Danceability: ptr(0.6), Tempo: ptr(140)},
	}

	row, ok := AggregateAlbum(album, tracks)
	require.True(t, ok)

	// Mean over non-null values only.
	require.NotNil(t, row.Danceability)
	assert.InDelta(t, 0.4, *row.Danceability, 1e-9)
	require.NotNil(t, row.Tempo)
	assert.InDelta(t, 120, *row.Tempo, 1e-9)

	// A descriptor null on every track stays null.
	assert.Nil(t, row.Energy)

	// Durations are never null and always sum.
	assert.Equal(t, 6000, row.DurationMs)

	// First artist is primary.
	assert.Equal(t, "spotify:artist:a", row.ArtistURI)
}

func TestAggregateAlbumAllNullIsInvalid(t *testing.T) {
	album := libex.Album{
		URI:    "spotify:album:y",
		Tracks: []libex.Track{{URI: "t1"}, {URI: "t2"}},
	}
	tracks := []libex.TrackFeatures{{TrackURI: "t1"}, {TrackURI: "t2"}}

	_, ok := AggregateAlbum(album, tracks)
	assert.False(t, ok)
}
