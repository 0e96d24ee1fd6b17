// Package dashboard turns the two feature tables into renderable views. All
// filtering is a pure function of the current selection and the immutable
// tables, so the HTTP and websocket layers stay thin.
package dashboard

import (
	"sort"
	"strconv"
	"time"

	"github.com/mager/libex/libex"
)

// Columns are the numeric columns a user can map to the album view's axes
// and color scale, sorted.
var Columns = []string{
	"acousticness", "danceability", "duration_ms", "energy",
	"instrumentalness", "key", "liveness", "loudness", "mode", "popularity",
	"release_date", "speechiness", "tempo", "time_signature", "total_tracks",
	"valence", "year",
}

// Axes picks which column drives each encoding of the album view.
type Axes struct {
	X     string `json:"x"`
	Y     string `json:"y"`
	Color string `json:"color"`
}

func DefaultAxes() Axes {
	return Axes{X: "valence", Y: "popularity", Color: "loudness"}
}

// Selection is the current interactive filter state. Empty fields filter
// nothing; artist URIs and cluster labels compose with OR, and the combined
// artist filter composes with the decade filter with AND.
type Selection struct {
	Artists  []string `json:"artists"`
	Clusters []string `json:"clusters"`
	Decades  []string `json:"decades"`
}

// Album is one album feature row prepared for display: release year and
// decade derived, loudness winsorized against the full album set.
type Album struct {
	libex.AlbumFeature
	Year   int    `json:"year"`
	Decade string `json:"decade"`
}

// Tables holds the prepared feature tables for the dashboard's lifetime.
type Tables struct {
	Artists []libex.ArtistFeature `json:"artists"`
	Albums  []Album               `json:"albums"`

	// Clusters is ordered by member count, largest first.
	Clusters []string `json:"clusters"`
	// Decades is ordered newest first.
	Decades []string `json:"decades"`
	// Columns echoes the axis choices for the control widgets.
	Columns []string `json:"columns"`

	clusterOf map[string]string
}

// Prepare derives the display columns and indexes both tables. Albums whose
// primary artist is missing from the artist table are dropped so every
// rendered point joins cleanly.
func Prepare(artists []libex.ArtistFeature, albums []libex.AlbumFeature) *Tables {
	t := &Tables{
		Artists:   artists,
		Columns:   Columns,
		clusterOf: make(map[string]string, len(artists)),
	}

	members := make(map[string]int)
	for _, a := range artists {
		t.clusterOf[a.URI] = a.GenreCluster
		members[a.GenreCluster]++
	}

	for cluster := range members {
		t.Clusters = append(t.Clusters, cluster)
	}
	sort.SliceStable(t.Clusters, func(i, j int) bool {
		if members[t.Clusters[i]] != members[t.Clusters[j]] {
			return members[t.Clusters[i]] > members[t.Clusters[j]]
		}
		return t.Clusters[i] < t.Clusters[j]
	})

	decades := make(map[string]bool)
	for _, a := range albums {
		if _, ok := t.clusterOf[a.ArtistURI]; !ok {
			continue
		}
		year := releaseYear(a.ReleaseDate)
		row := Album{
			AlbumFeature: a,
			Year:         year,
			Decade:       strconv.Itoa(year / 10 * 10),
		}
		decades[row.Decade] = true
		t.Albums = append(t.Albums, row)
	}

	winsorizeLoudness(t.Albums)

	for d := range decades {
		t.Decades = append(t.Decades, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(t.Decades)))

	return t
}

// View is one rendered album scatter: the filtered points plus the column
// names driving each encoding.
type View struct {
	X      string  `json:"x"`
	Y      string  `json:"y"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

type Point struct {
	URI        string `json:"uri"`
	Name       string `json:"name"`
	ArtistName string `json:"artist_name"`
	Image      string `json:"image"`
	Year       int    `json:"year"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Color is null when the album's value for the color column is null.
	Color *float64 `json:"color"`
}

// Render filters the album table by the selection and maps the chosen
// columns onto the plot encodings. Albums with no value for the X or Y
// column are left out of the view.
func (t *Tables) Render(sel Selection, axes Axes) View {
	if axes.X == "" || axes.Y == "" || axes.Color == "" {
		axes = DefaultAxes()
	}

	artists := toSet(sel.Artists)
	clusters := toSet(sel.Clusters)
	decades := toSet(sel.Decades)

	view := View{X: axes.X, Y: axes.Y, Color: axes.Color}
	for i := range t.Albums {
		a := &t.Albums[i]

		if len(artists) > 0 || len(clusters) > 0 {
			if !artists[a.ArtistURI] && !clusters[t.clusterOf[a.ArtistURI]] {
				continue
			}
		}
		if len(decades) > 0 && !decades[a.Decade] {
			continue
		}

		x, ok := columnValue(a, axes.X)
		if !ok {
			continue
		}
		y, ok := columnValue(a, axes.Y)
		if !ok {
			continue
		}

		p := Point{
			URI:        a.URI,
			Name:       a.Name,
			ArtistName: a.ArtistName,
			Image:      a.Image,
			Year:       a.Year,
			X:          x,
			Y:          y,
		}
		if c, ok := columnValue(a, axes.Color); ok {
			p.Color = &c
		}
		view.Points = append(view.Points, p)
	}

	return view
}

// columnValue looks up an album's value for one of Columns. The second
// return value is false for a null descriptor mean.
func columnValue(a *Album, column string) (float64, bool) {
	switch column {
	case "popularity":
		return float64(a.Popularity), true
	case "total_tracks":
		return float64(a.TotalTracks), true
	case "duration_ms":
		return float64(a.DurationMs), true
	case "year":
		return float64(a.Year), true
	case "release_date":
		// Epoch milliseconds, so client-side axes can format it as a date.
		return float64(parseReleaseDate(a.ReleaseDate).UnixMilli()), true
	}

	if v := a.Descriptor(column); v != nil {
		return *v, true
	}
	return 0, false
}

// parseReleaseDate accepts the source's day, month, or year precision.
func parseReleaseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func releaseYear(s string) int {
	return parseReleaseDate(s).Year()
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
