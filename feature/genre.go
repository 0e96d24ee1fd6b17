package feature

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/mager/libex/libex"
)

// GenreSpace is the artist-by-genre weight matrix the clustering and
// embedding steps run on. Each artist is a document, each genre tag a term.
type GenreSpace struct {
	// Genres is the column ordering: every distinct tag seen in the input,
	// sorted, so a fixed input set always yields the same matrix.
	Genres []string

	// Binary is the 0/1 membership matrix, one row per artist.
	Binary *mat.Dense

	// Weights is Binary after TF-IDF weighting and L2 row normalization.
	// Artists with no genre tags keep an all-zero row.
	Weights *mat.Dense
}

// NewGenreSpace builds the membership matrix and its TF-IDF weighting for
// the given artists.
func NewGenreSpace(artists []libex.Artist) *GenreSpace {
	seen := make(map[string]bool)
	for _, a := range artists {
		for _, g := range a.Genres {
			seen[g] = true
		}
	}

	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	col := make(map[string]int, len(genres))
	for i, g := range genres {
		col[g] = i
	}

	n, m := len(artists), len(genres)
	binary := mat.NewDense(n, max(m, 1), nil)
	for i, a := range artists {
		for _, g := range a.Genres {
			binary.Set(i, col[g], 1)
		}
	}

	s := &GenreSpace{Genres: genres, Binary: binary}
	s.Weights = s.tfidf()
	return s
}

// tfidf applies smoothed inverse-document-frequency weighting,
// idf = ln((1+n)/(1+df)) + 1, then normalizes each row to unit length.
// Genres carried by few artists end up weighted above ubiquitous ones.
func (s *GenreSpace) tfidf() *mat.Dense {
	n, m := s.Binary.Dims()

	df := make([]float64, m)
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			df[j] += s.Binary.At(i, j)
		}
	}

	idf := make([]float64, m)
	for j := 0; j < m; j++ {
		idf[j] = math.Log((1+float64(n))/(1+df[j])) + 1
	}

	w := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		var norm float64
		for j := 0; j < m; j++ {
			v := s.Binary.At(i, j) * idf[j]
			w.Set(i, j, v)
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for j := 0; j < m; j++ {
			w.Set(i, j, w.At(i, j)/norm)
		}
	}

	return w
}

// MostSpecific returns the genre tag with the maximum weight in the given
// artist's row. Ties, including the all-zero row of a genreless artist,
// resolve to the first genre column.
func (s *GenreSpace) MostSpecific(row int) string {
	if len(s.Genres) == 0 {
		return ""
	}

	best := 0
	bestW := s.Weights.At(row, 0)
	for j := 1; j < len(s.Genres); j++ {
		if w := s.Weights.At(row, j); w > bestW {
			best, bestW = j, w
		}
	}

	return s.Genres[best]
}
