package feature

import (
	"github.com/danaugrs/go-tsne/tsne"
)

const (
	tsneLearningRate = 200
	tsneIterations   = 300
)

// embedRows projects the genre weight matrix down to two plotting
// coordinates per artist with t-SNE. The library reads the global rand
// source for its initial solution, so callers seed first for reproducible
// layouts.
func embedRows(space *GenreSpace, perplexity float64) [][2]float64 {
	n, _ := space.Weights.Dims()

	// t-SNE needs perplexity well below the number of points.
	if limit := float64(n-1) / 3; perplexity > limit && limit > 0 {
		perplexity = limit
	}

	t := tsne.NewTSNE(2, perplexity, tsneLearningRate, tsneIterations, false)
	embedding := t.EmbedData(space.Weights, nil)

	coords := make([][2]float64, n)
	for i := 0; i < n; i++ {
		coords[i][0] = embedding.At(i, 0)
		coords[i][1] = embedding.At(i, 1)
	}

	return coords
}
