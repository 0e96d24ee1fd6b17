package feature

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/muesli/clusters"
)

const clusterIterations = 96

// observation adapts one matrix row to the clustering library's interface.
type observation struct {
	row    int
	coords clusters.Coordinates
}

func (o observation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o observation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// clusterRows partitions the rows of the genre weight matrix into k clusters
// with Lloyd iterations, initialized from k distinct rows drawn from rng so a
// fixed seed always yields the same partition. It returns the cluster id per
// row and the center vector per cluster.
func clusterRows(space *GenreSpace, k int, rng *rand.Rand) ([]int, [][]float64, error) {
	n, m := space.Weights.Dims()
	if n < k {
		return nil, nil, fmt.Errorf("cannot form %d clusters from %d artists", k, n)
	}

	obs := make(clusters.Observations, n)
	for i := 0; i < n; i++ {
		coords := make(clusters.Coordinates, m)
		for j := 0; j < m; j++ {
			coords[j] = space.Weights.At(i, j)
		}
		obs[i] = observation{row: i, coords: coords}
	}

	cc := seedCenters(obs, k, rng)

	assignments := make([]int, n)
	for iter := 0; iter < clusterIterations; iter++ {
		changes := 0
		for i, o := range obs {
			ci := cc.Nearest(o)
			if assignments[i] != ci {
				assignments[i] = ci
				changes++
			}
		}

		cc.Reset()
		for i, o := range obs {
			cc[assignments[i]].Append(o)
		}
		cc.Recenter()

		if changes == 0 && iter > 0 {
			break
		}
	}

	centers := make([][]float64, len(cc))
	for ci := range cc {
		centers[ci] = cc[ci].Center
	}

	return assignments, centers, nil
}

// seedCenters picks k distinct observations as the initial cluster centers.
func seedCenters(obs clusters.Observations, k int, rng *rand.Rand) clusters.Clusters {
	picks := rng.Perm(len(obs))[:k]

	cc := make(clusters.Clusters, k)
	for ci, p := range picks {
		center := make(clusters.Coordinates, len(obs[p].Coordinates()))
		copy(center, obs[p].Coordinates())
		cc[ci] = clusters.Cluster{Center: center}
	}
	return cc
}

// clusterLabel names a cluster after the top weighted genre tags of its
// center, e.g. "indie rock, dream pop". Ties resolve to the earlier column.
func clusterLabel(space *GenreSpace, center []float64, topN int) string {
	if len(space.Genres) == 0 {
		return ""
	}

	order := make([]int, len(center))
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return center[order[a]] > center[order[b]]
	})

	if topN > len(order) {
		topN = len(order)
	}
	top := make([]string, topN)
	for i := 0; i < topN; i++ {
		top[i] = space.Genres[order[i]]
	}

	return strings.Join(top, ", ")
}
