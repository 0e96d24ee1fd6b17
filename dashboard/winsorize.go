package dashboard

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// winsorizeLoudness clips every album's loudness mean to the [P5, P95] range
// of the full set, so a handful of extreme masters don't compress the color
// scale for everything else. Null loudness values are left alone.
func winsorizeLoudness(albums []Album) {
	var values []float64
	for i := range albums {
		if albums[i].Loudness != nil {
			values = append(values, *albums[i].Loudness)
		}
	}
	if len(values) < 2 {
		return
	}

	sort.Float64s(values)
	lo := stat.Quantile(0.05, stat.LinInterp, values, nil)
	hi := stat.Quantile(0.95, stat.LinInterp, values, nil)

	for i := range albums {
		if albums[i].Loudness == nil {
			continue
		}
		clipped := clamp(*albums[i].Loudness, lo, hi)
		albums[i].Loudness = &clipped
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
