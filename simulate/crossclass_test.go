package simulate_test

import (
	"testing"

	"github.com/statforge/mixedsim/randgen"
	"github.com/statforge/mixedsim/simulate"
	"github.com/stretchr/testify/require"
)

// TestCrossClassified_BroadcastCorrectness: with 5 ids and 1000 rows,
// every row's effect value must equal the generated value for its
// assigned id, and each id appears at least once.
func TestCrossClassified_BroadcastCorrectness(t *testing.T) {
	const (
		numIDs     = 5
		sampleSize = 1000
	)
	spec := randgen.Spec{Variances: []float64{2.0}}

	f, err := simulate.CrossClassified(numIDs, sampleSize, spec, []string{"b0", "nbhd"},
		simulate.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, sampleSize, f.NumRows())

	b0, err := f.Column("b0")
	require.NoError(t, err)
	ids, err := f.Column("nbhd")
	require.NoError(t, err)

	// Within one id, the broadcast value is constant; across the sample
	// there are at most numIDs distinct values, keyed exactly by id.
	valueByID := make(map[float64]float64)
	seen := make(map[float64]bool)
	for i := 0; i < sampleSize; i++ {
		id := ids[i]
		require.GreaterOrEqual(t, id, 1.0)
		require.LessOrEqual(t, id, float64(numIDs))
		if v, ok := valueByID[id]; ok {
			require.Equal(t, v, b0[i], "row %d got a value from a different id", i)
		} else {
			valueByID[id] = b0[i]
		}
		seen[id] = true
	}
	require.Len(t, seen, numIDs, "every id should appear in 1000 draws over 5 ids")
}

// TestCrossClassified_MultiEffect routes a correlated two-effect spec
// through the full generator and keeps column naming order-sensitive.
func TestCrossClassified_MultiEffect(t *testing.T) {
	spec := randgen.Spec{
		Variances:    []float64{1, 1},
		Correlations: []float64{0.4},
	}

	f, err := simulate.CrossClassified(10, 200, spec, []string{"u0", "u1", "clinic"},
		simulate.WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, []string{"u0", "u1", "clinic"}, f.Names())
	require.Equal(t, 200, f.NumRows())
}

// TestCrossClassified_Determinism: same seed ⇒ identical frames.
func TestCrossClassified_Determinism(t *testing.T) {
	spec := randgen.Spec{Variances: []float64{1}}

	a, err := simulate.CrossClassified(7, 100, spec, []string{"b0", "g"}, simulate.WithSeed(3))
	require.NoError(t, err)
	b, err := simulate.CrossClassified(7, 100, spec, []string{"b0", "g"}, simulate.WithSeed(3))
	require.NoError(t, err)

	for _, name := range a.Names() {
		ca, err := a.Column(name)
		require.NoError(t, err)
		cb, err := b.Column(name)
		require.NoError(t, err)
		require.Equal(t, ca, cb)
	}
}

// TestCrossClassified_ShapeErrors covers the fail-fast validation.
func TestCrossClassified_ShapeErrors(t *testing.T) {
	spec := randgen.Spec{Variances: []float64{1}}

	_, err := simulate.CrossClassified(0, 10, spec, []string{"b0", "g"})
	require.ErrorIs(t, err, randgen.ErrInvalidGenerationSpec)

	_, err = simulate.CrossClassified(5, 10, spec, []string{"b0"})
	require.ErrorIs(t, err, randgen.ErrInvalidGenerationSpec)
}
