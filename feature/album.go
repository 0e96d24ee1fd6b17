package feature

import (
	"gonum.org/v1/gonum/stat"

	"github.com/mager/libex/libex"
	"github.com/mager/libex/util"
)

// AggregateAlbum folds an album's per-track audio features into one album
// feature row. Each descriptor mean covers only the tracks that have a value
// for it; a descriptor that is null on every track stays null. The second
// return value is false when every descriptor of every track is null, which
// marks the album as unanalyzed and excluded from the table.
func AggregateAlbum(album libex.Album, tracks []libex.TrackFeatures) (libex.AlbumFeature, bool) {
	row := libex.AlbumFeature{
		URI:         album.URI,
		Name:        album.Name,
		ArtistURI:   util.PrimaryArtist(album.ArtistURIs),
		ArtistName:  album.ArtistName,
		Image:       util.PrimaryImage(album.Images),
		Popularity:  album.Popularity,
		ReleaseDate: album.ReleaseDate,
		TotalTracks: album.TotalTracks,
	}

	for _, t := range album.Tracks {
		row.DurationMs += t.DurationMs
	}

	analyzed := false
	for d, name := range libex.DescriptorNames {
		var values []float64
		for i := range tracks {
			if v := tracks[i].Descriptors()[d]; v != nil {
				values = append(values, *v)
			}
		}
		if len(values) == 0 {
			continue
		}
		analyzed = true
		mean := stat.Mean(values, nil)
		row.SetDescriptor(name, &mean)
	}

	return row, analyzed
}
