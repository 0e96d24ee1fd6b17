// Package libex holds the record types shared by the fetch, build, and
// dashboard stages. The raw types mirror what the Spotify Web API returns for
// a user's library; the feature types are the two flat tables the dashboards
// consume.
package libex

// Artist is one followed artist as fetched from the library.
type Artist struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
	// Genres are Spotify's free-form genre tags, unordered, possibly empty.
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Followers  int      `json:"followers"`
	// Images is ordered largest to smallest.
	Images []string `json:"images"`
}

// Track is one album track. Duration is never missing.
type Track struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	DurationMs  int    `json:"duration_ms"`
	TrackNumber int    `json:"track_number"`
}

// Album is one full album record. The first artist URI is treated as the
// primary artist everywhere downstream.
type Album struct {
	URI        string   `json:"uri"`
	Name       string   `json:"name"`
	ArtistURIs []string `json:"artist_uris"`
	ArtistName string   `json:"artist_name"`
	Popularity int      `json:"popularity"`
	// ReleaseDate may be year-only ("1976"), month ("1976-03"), or full day
	// precision depending on ReleaseDatePrecision.
	ReleaseDate          string   `json:"release_date"`
	ReleaseDatePrecision string   `json:"release_date_precision"`
	TotalTracks          int      `json:"total_tracks"`
	Tracks               []Track  `json:"tracks"`
	Images               []string `json:"images"`
}

// TrackFeatures holds the 12 per-track audio descriptors, keyed by track URI.
// Any descriptor may be null when the source could not analyze the track; a
// track the source never analyzed at all has every descriptor null.
type TrackFeatures struct {
	TrackURI string `json:"track_uri"`

	Danceability     *float64 `json:"danceability"`
	Energy           *float64 `json:"energy"`
	Key              *float64 `json:"key"`
	Loudness         *float64 `json:"loudness"`
	Mode             *float64 `json:"mode"`
	Speechiness      *float64 `json:"speechiness"`
	Acousticness     *float64 `json:"acousticness"`
	Instrumentalness *float64 `json:"instrumentalness"`
	Liveness         *float64 `json:"liveness"`
	Valence          *float64 `json:"valence"`
	Tempo            *float64 `json:"tempo"`
	TimeSignature    *float64 `json:"time_signature"`
}

// DescriptorNames lists the audio descriptors in the order they appear as
// columns in the album feature table.
var DescriptorNames = []string{
	"danceability", "energy", "key", "loudness", "mode", "speechiness",
	"acousticness", "instrumentalness", "liveness", "valence", "tempo",
	"time_signature",
}

// Descriptors returns the descriptor values in DescriptorNames order.
func (f *TrackFeatures) Descriptors() []*float64 {
	return []*float64{
		f.Danceability, f.Energy, f.Key, f.Loudness, f.Mode, f.Speechiness,
		f.Acousticness, f.Instrumentalness, f.Liveness, f.Valence, f.Tempo,
		f.TimeSignature,
	}
}

// ArtistFeature is one row of the artists_features table.
type ArtistFeature struct {
	URI        string `json:"uri"`
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
	Followers  int    `json:"followers"`
	Image      string `json:"image"`

	// GenreCluster is the human-readable label shared by every artist in the
	// same cluster, e.g. "indie rock, dream pop".
	GenreCluster string `json:"genre_cluster"`
	// GenreSpecific is the single most distinctive genre tag for this artist.
	GenreSpecific string `json:"genre_specific"`
	// GenreX and GenreY place the artist in the 2-D genre embedding.
	GenreX float64 `json:"genre_x"`
	GenreY float64 `json:"genre_y"`
}

// AlbumFeature is one row of the albums_features table. The descriptor
// columns are means over the album's tracks; a mean is null when every track
// was null for that descriptor.
type AlbumFeature struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	ArtistURI   string `json:"artist_uri"`
	ArtistName  string `json:"artist_name"`
	Image       string `json:"image"`
	Popularity  int    `json:"popularity"`
	ReleaseDate string `json:"release_date"`
	TotalTracks int    `json:"total_tracks"`
	DurationMs  int    `json:"duration_ms"`

	Danceability     *float64 `json:"danceability"`
	Energy           *float64 `json:"energy"`
	Key              *float64 `json:"key"`
	Loudness         *float64 `json:"loudness"`
	Mode             *float64 `json:"mode"`
	Speechiness      *float64 `json:"speechiness"`
	Acousticness     *float64 `json:"acousticness"`
	Instrumentalness *float64 `json:"instrumentalness"`
	Liveness         *float64 `json:"liveness"`
	Valence          *float64 `json:"valence"`
	Tempo            *float64 `json:"tempo"`
	TimeSignature    *float64 `json:"time_signature"`
}

// Descriptor returns the named descriptor mean, or nil when the name is not a
// descriptor column or the mean is null.
func (a *AlbumFeature) Descriptor(name string) *float64 {
	switch name {
	case "danceability":
		return a.Danceability
	case "energy":
		return a.Energy
	case "key":
		return a.Key
	case "loudness":
		return a.Loudness
	case "mode":
		return a.Mode
	case "speechiness":
		return a.Speechiness
	case "acousticness":
		return a.Acousticness
	case "instrumentalness":
		return a.Instrumentalness
	case "liveness":
		return a.Liveness
	case "valence":
		return a.Valence
	case "tempo":
		return a.Tempo
	case "time_signature":
		return a.TimeSignature
	}
	return nil
}

// SetDescriptor assigns the named descriptor mean.
func (a *AlbumFeature) SetDescriptor(name string, v *float64) {
	switch name {
	case "danceability":
		a.Danceability = v
	case "energy":
		a.Energy = v
	case "key":
		a.Key = v
	case "loudness":
		a.Loudness = v
	case "mode":
		a.Mode = v
	case "speechiness":
		a.Speechiness = v
	case "acousticness":
		a.Acousticness = v
	case "instrumentalness":
		a.Instrumentalness = v
	case "liveness":
		a.Liveness = v
	case "valence":
		a.Valence = v
	case "tempo":
		a.Tempo = v
	case "time_signature":
		a.TimeSignature = v
	}
}
