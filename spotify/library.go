package spotify

import (
	"context"
	"errors"
	"fmt"

	spot "github.com/zmb3/spotify/v2"

	"github.com/mager/libex/libex"
)

const (
	followedPageSize = 50
	albumBatchSize   = 20
	featureBatchSize = 100
)

// FollowedArtists fetches every artist the current user follows, walking the
// cursor one page at a time.
func (c *SpotifyClient) FollowedArtists(ctx context.Context) ([]libex.Artist, error) {
	var artists []libex.Artist

	var after string
	for {
		opts := []spot.RequestOption{spot.Limit(followedPageSize)}
		if after != "" {
			opts = append(opts, spot.After(after))
		}

		page, err := c.Client.CurrentUsersFollowedArtists(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error fetching followed artists: %w", err)
		}

		for _, a := range page.Artists {
			artists = append(artists, toArtist(a))
		}

		if page.Cursor.After == "" {
			return artists, nil
		}
		after = page.Cursor.After
	}
}

// ArtistAlbumIDs lists the IDs of an artist's albums, paginated with the
// given page size.
func (c *SpotifyClient) ArtistAlbumIDs(ctx context.Context, artistID spot.ID, pageSize int) ([]spot.ID, error) {
	page, err := c.Client.GetArtistAlbums(
		ctx, artistID, []spot.AlbumType{spot.AlbumTypeAlbum}, spot.Limit(pageSize))
	if err != nil {
		return nil, fmt.Errorf("error fetching albums for artist %s: %w", artistID, err)
	}

	var ids []spot.ID
	for {
		for _, a := range page.Albums {
			ids = append(ids, a.ID)
		}

		err = c.Client.NextPage(ctx, page)
		if errors.Is(err, spot.ErrNoMorePages) {
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error fetching albums for artist %s: %w", artistID, err)
		}
	}
}

// AlbumDetails fetches full album records in batches of 20.
func (c *SpotifyClient) AlbumDetails(ctx context.Context, ids []spot.ID) ([]libex.Album, error) {
	albums := make([]libex.Album, 0, len(ids))

	for i := 0; i < len(ids); i += albumBatchSize {
		batch := ids[i:min(i+albumBatchSize, len(ids))]

		full, err := c.Client.GetAlbums(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("error fetching album batch %d-%d: %w", i, i+len(batch), err)
		}

		for _, a := range full {
			if a == nil {
				continue
			}
			albums = append(albums, toAlbum(a))
		}
	}

	return albums, nil
}

// AudioFeatures fetches per-track audio feature records in batches of 100.
// The result has one record per requested track, in request order; a track
// the source could not analyze yields a record with every descriptor null.
func (c *SpotifyClient) AudioFeatures(ctx context.Context, trackURIs []string) ([]libex.TrackFeatures, error) {
	features := make([]libex.TrackFeatures, 0, len(trackURIs))

	for i := 0; i < len(trackURIs); i += featureBatchSize {
		batch := trackURIs[i:min(i+featureBatchSize, len(trackURIs))]

		ids := make([]spot.ID, len(batch))
		for j, uri := range batch {
			ids[j] = ExtractID(spot.URI(uri))
		}

		result, err := c.Client.GetAudioFeatures(ctx, ids...)
		if err != nil {
			return nil, fmt.Errorf("error fetching audio features batch %d-%d: %w", i, i+len(batch), err)
		}

		for j, f := range result {
			features = append(features, toTrackFeatures(batch[j], f))
		}
	}

	return features, nil
}

func toArtist(a spot.FullArtist) libex.Artist {
	return libex.Artist{
		URI:        string(a.URI),
		Name:       a.Name,
		Genres:     a.Genres,
		Popularity: int(a.Popularity),
		Followers:  int(a.Followers.Count),
		Images:     imageURLs(a.Images),
	}
}

func toAlbum(a *spot.FullAlbum) libex.Album {
	artistURIs := make([]string, len(a.Artists))
	for i, artist := range a.Artists {
		artistURIs[i] = string(artist.URI)
	}

	tracks := make([]libex.Track, len(a.Tracks.Tracks))
	for i, t := range a.Tracks.Tracks {
		tracks[i] = libex.Track{
			URI:         string(t.URI),
			Name:        t.Name,
			DurationMs:  int(t.Duration),
			TrackNumber: int(t.TrackNumber),
		}
	}

	return libex.Album{
		URI:                  string(a.URI),
		Name:                 a.Name,
		ArtistURIs:           artistURIs,
		ArtistName:           GetFirstArtist(a.Artists),
		Popularity:           int(a.Popularity),
		ReleaseDate:          a.ReleaseDate,
		ReleaseDatePrecision: a.ReleaseDatePrecision,
		TotalTracks:          len(a.Tracks.Tracks),
		Tracks:               tracks,
		Images:               imageURLs(a.Images),
	}
}

func toTrackFeatures(uri string, f *spot.AudioFeatures) libex.TrackFeatures {
	tf := libex.TrackFeatures{TrackURI: uri}
	if f == nil {
		// Track was never analyzed; every descriptor stays null.
		return tf
	}

	tf.Danceability = f64(float64(f.Danceability))
	tf.Energy = f64(float64(f.Energy))
	tf.Key = f64(float64(f.Key))
	tf.Loudness = f64(float64(f.Loudness))
	tf.Mode = f64(float64(f.Mode))
	tf.Speechiness = f64(float64(f.Speechiness))
	tf.Acousticness = f64(float64(f.Acousticness))
	tf.Instrumentalness = f64(float64(f.Instrumentalness))
	tf.Liveness = f64(float64(f.Liveness))
	tf.Valence = f64(float64(f.Valence))
	tf.Tempo = f64(float64(f.Tempo))
	tf.TimeSignature = f64(float64(f.TimeSignature))
	return tf
}

func f64(v float64) *float64 {
	return &v
}

func imageURLs(images []spot.Image) []string {
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	return urls
}
