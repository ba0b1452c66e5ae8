package simulate_test

import (
	"testing"

	"github.com/statforge/mixedsim/dataset"
	"github.com/statforge/mixedsim/formula"
	"github.com/statforge/mixedsim/randgen"
	"github.com/statforge/mixedsim/simulate"
	"github.com/stretchr/testify/require"
)

// growthSpecs is the canonical two-term structure used across these tests:
// random intercept + slope by subject, cross-classified intercept by nbhd.
func growthSpecs() []simulate.GroupSpec {
	return []simulate.GroupSpec{
		{Spec: randgen.Spec{Variances: []float64{0.5, 0.1}, Correlations: []float64{-0.3}}},
		{Spec: randgen.Spec{Variances: []float64{0.25}}, CrossClass: true},
	}
}

// TestRandomEffect_FreshChain verifies the data==nil path: synthesized id
// columns, expanded standard effects, broadcast cross-classified effects.
func TestRandomEffect_FreshChain(t *testing.T) {
	sizes := simulate.SampleSize{Clusters: map[string][]int{"subject": {3, 4, 5}}}

	out, err := simulate.RandomEffect(nil,
		"y ~ time + (1 + time | subject) + (1 | nbhd)",
		growthSpecs(), sizes, simulate.WithSeed(21))
	require.NoError(t, err)
	require.Equal(t, 12, out.NumRows())
	// subject ids, two subject effects, nbhd effect ("1" is taken, so it
	// falls back to "1.nbhd"), nbhd membership ids
	require.Equal(t, []string{"subject", "1", "time", "1.nbhd", "nbhd"}, out.Names())

	// synthesized subject ids follow the size spec's run lengths
	subj, err := out.Column("subject")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3}, subj)

	// standard effects are constant within a subject
	b0, err := out.Column("1")
	require.NoError(t, err)
	require.Equal(t, b0[0], b0[2])
	require.Equal(t, b0[3], b0[6])
	require.NotEqual(t, b0[0], b0[3])

	// nbhd membership stays inside the level-1 id population
	nbhd, err := out.Column("nbhd")
	require.NoError(t, err)
	for _, id := range nbhd {
		require.GreaterOrEqual(t, id, 1.0)
		require.LessOrEqual(t, id, 12.0)
	}
}

// TestRandomEffect_Determinism: two invocations with identical inputs and
// seed produce identical datasets (per-column equality).
func TestRandomEffect_Determinism(t *testing.T) {
	sizes := simulate.SampleSize{Clusters: map[string][]int{"subject": {5, 5, 5, 5}}}
	run := func() *dataset.Frame {
		out, err := simulate.RandomEffect(nil,
			"y ~ time + (1 + time | subject) + (1 | nbhd)",
			growthSpecs(), sizes, simulate.WithSeed(777))
		require.NoError(t, err)

		return out
	}

	a, b := run(), run()
	require.Equal(t, a.Names(), b.Names())
	for _, name := range a.Names() {
		ca, err := a.Column(name)
		require.NoError(t, err)
		cb, err := b.Column(name)
		require.NoError(t, err)
		require.Equal(t, ca, cb, "column %q differs between runs", name)
	}
}

// TestRandomEffect_SeedOptionReuse: one cached WithSeed value applied to two
// calls must restart the stream each time instead of continuing a shared one.
func TestRandomEffect_SeedOptionReuse(t *testing.T) {
	sizes := simulate.SampleSize{Clusters: map[string][]int{"subject": {5, 5, 5, 5}}}
	opt := simulate.WithSeed(777)

	run := func() *dataset.Frame {
		out, err := simulate.RandomEffect(nil,
			"y ~ time + (1 + time | subject) + (1 | nbhd)",
			growthSpecs(), sizes, opt)
		require.NoError(t, err)

		return out
	}

	a, b := run(), run()
	for _, name := range a.Names() {
		ca, err := a.Column(name)
		require.NoError(t, err)
		cb, err := b.Column(name)
		require.NoError(t, err)
		require.Equal(t, ca, cb, "column %q differs between runs", name)
	}
}

// TestRandomEffect_RepeatedClusterNaming: several terms on the same cluster
// variable must all bind, with colliding effect names disambiguated by the
// cluster suffix and then a running counter.
func TestRandomEffect_RepeatedClusterNaming(t *testing.T) {
	sizes := simulate.SampleSize{Clusters: map[string][]int{"subject": {2, 3}}}
	specs := []simulate.GroupSpec{
		{Spec: randgen.Spec{Variances: []float64{1}}},
		{Spec: randgen.Spec{Variances: []float64{1}}},
		{Spec: randgen.Spec{Variances: []float64{1}}},
	}

	out, err := simulate.RandomEffect(nil,
		"y ~ (1 | subject) + (1 | subject) + (1 | subject)",
		specs, sizes, simulate.WithSeed(31))
	require.NoError(t, err)
	require.Equal(t, []string{"subject", "1", "1.subject", "1.subject.2"}, out.Names())

	// each term carries its own independent draw
	a, err := out.Column("1")
	require.NoError(t, err)
	b, err := out.Column("1.subject")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

// TestRandomEffect_ExtendsExistingData verifies the chained path: cluster
// sizes recovered from the incoming id column, new effects bound on.
func TestRandomEffect_ExtendsExistingData(t *testing.T) {
	sizes := simulate.SampleSize{Clusters: map[string][]int{"subject": {2, 3}}}
	first, err := simulate.RandomEffect(nil, "y ~ (1 | subject)",
		[]simulate.GroupSpec{{Spec: randgen.Spec{Variances: []float64{1}}}},
		sizes, simulate.WithSeed(8))
	require.NoError(t, err)
	require.Equal(t, 5, first.NumRows())

	// second step reuses the existing subject column; no SampleSize entry
	// is needed for it anymore
	second, err := simulate.RandomEffect(first, "y ~ (time | subject)",
		[]simulate.GroupSpec{{Spec: randgen.Spec{Variances: []float64{2}}}},
		simulate.SampleSize{}, simulate.WithSeed(9))
	require.NoError(t, err)
	require.Same(t, first, second, "the incoming frame is extended in place")
	require.Contains(t, second.Names(), "time")

	tm, err := second.Column("time")
	require.NoError(t, err)
	require.Equal(t, tm[0], tm[1])
	require.Equal(t, tm[2], tm[4])
	require.NotEqual(t, tm[0], tm[2])
}

// TestRandomEffect_RowMismatchFailsFast: a sample-size spec that disagrees
// with the incoming dataset's row count must abort before generation.
func TestRandomEffect_RowMismatchFailsFast(t *testing.T) {
	data := dataset.New()
	require.NoError(t, data.AddColumn("x", []float64{1, 2, 3}))

	_, err := simulate.RandomEffect(data, "y ~ (1 | g)",
		[]simulate.GroupSpec{{Spec: randgen.Spec{Variances: []float64{1}}}},
		simulate.SampleSize{Clusters: map[string][]int{"g": {2, 3}}})
	require.ErrorIs(t, err, dataset.ErrRowCountMismatch)
}

// TestRandomEffect_CrossOnlyChain starts a chain with only a
// cross-classified term; the level-1 total comes from its size entry.
func TestRandomEffect_CrossOnlyChain(t *testing.T) {
	sizes := simulate.SampleSize{Clusters: map[string][]int{"nbhd": {4, 4}}}
	out, err := simulate.RandomEffect(nil, "y ~ x + (1 | nbhd)",
		[]simulate.GroupSpec{{Spec: randgen.Spec{Variances: []float64{1}}, CrossClass: true}},
		sizes, simulate.WithSeed(2))
	require.NoError(t, err)
	require.Equal(t, 8, out.NumRows())
	require.Equal(t, []string{"1", "nbhd"}, out.Names())
}

// TestRandomEffect_MalformedInputs maps malformed formulas and terms onto
// their sentinel errors.
func TestRandomEffect_MalformedInputs(t *testing.T) {
	specs := []simulate.GroupSpec{{Spec: randgen.Spec{Variances: []float64{1}}}}
	sizes := simulate.SampleSize{Clusters: map[string][]int{"g1": {2, 2}}}

	_, err := simulate.RandomEffect(nil, "y x1 + (1|g1)", specs, sizes)
	require.ErrorIs(t, err, formula.ErrMalformedFormula)

	_, err = simulate.RandomEffect(nil, "y ~ x1 + (1 g1)", specs, sizes)
	require.ErrorIs(t, err, formula.ErrMalformedTerm)

	_, err = simulate.RandomEffect(nil, "y ~ x1", specs, sizes)
	require.ErrorIs(t, err, simulate.ErrNoRandomTerms)
	require.ErrorIs(t, err, formula.ErrMalformedFormula)
}

// TestRandomEffect_MissingSampleSize: a fresh chain without an entry for
// the grouping variable cannot proceed.
func TestRandomEffect_MissingSampleSize(t *testing.T) {
	_, err := simulate.RandomEffect(nil, "y ~ (1 | school)",
		[]simulate.GroupSpec{{Spec: randgen.Spec{Variances: []float64{1}}}},
		simulate.SampleSize{})
	require.ErrorIs(t, err, simulate.ErrInvalidSampleSize)
}
