package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mager/libex/libex"
)

func artist(name string, genres ...string) libex.Artist {
	return libex.Artist{URI: "spotify:artist:" + name, Name: name, Genres: genres}
}

func TestGenreSpaceBinaryMatrix(t *testing.T) {
	artists := []libex.Artist{
		artist("a", "rock", "indie rock"),
		artist("b", "rock"),
		artist("c", "ambient", "drone", "rock"),
		artist("d"),
	}

	space := NewGenreSpace(artists)

	require.Equal(t, []string{"ambient", "drone", "indie rock", "rock"}, space.Genres)

	// One row per artist; each row sums to the artist's tag count.
	for i, a := range artists {
		var sum float64
		for j := range space.Genres {
			v := space.Binary.At(i, j)
			assert.Contains(t, []float64{0, 1}, v)
			sum += v
		}
		assert.Equal(t, float64(len(a.Genres)), sum, "row sum for %s", a.Name)
	}
}

func TestTFIDFRareGenreOutweighsCommon(t *testing.T) {
	// "rock" appears on every artist, "drone" on exactly one. The maximum
	// weight of the rare column must not be below the common one's.
	artists := []libex.Artist{
		artist("a", "rock", "drone"),
		artist("b", "rock"),
		artist("c", "rock"),
		artist("d", "rock"),
	}

	space := NewGenreSpace(artists)

	col := func(name string) int {
		for j, g := range space.Genres {
			if g == name {
				return j
			}
		}
		t.Fatalf("genre %q not in space", name)
		return -1
	}

	maxWeight := func(j int) float64 {
		var best float64
		n, _ := space.Weights.Dims()
		for i := 0; i < n; i++ {
			if w := space.Weights.At(i, j); w > best {
				best = w
			}
		}
		return best
	}

	assert.GreaterOrEqual(t, maxWeight(col("drone")), maxWeight(col("rock")))
}

func TestTFIDFZeroRowStaysZero(t *testing.T) {
	artists := []libex.Artist{
		artist("a", "rock"),
		artist("b"),
	}

	space := NewGenreSpace(artists)

	for j := range space.Genres {
		assert.Zero(t, space.Weights.At(1, j))
	}
}

func TestMostSpecific(t *testing.T) {
	artists := []libex.Artist{
		artist("a", "rock", "zeuhl"),
		artist("b", "rock"),
		artist("c", "rock"),
		artist("d"),
	}

	space := NewGenreSpace(artists)

	// "zeuhl" is rarer than "rock", so it carries the higher weight.
	assert.Equal(t, "zeuhl", space.MostSpecific(0))

	// An all-zero row resolves to the first genre column instead of failing.
	assert.Equal(t, space.Genres[0], space.MostSpecific(3))
}
