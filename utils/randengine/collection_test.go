package randengine_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/mtrand/utils/randengine"
)

func TestChoose(t *testing.T) {
	e := randengine.New(42)
	_, ok := randengine.Choose(e, []int{})
	assert.False(t, ok)
	assert.Equal(t, 624, e.Index())

	data := []int{1, 2, 3, 4, 5}
	seen := map[int]bool{}
	for range 1000 {
		v, ok := randengine.Choose(e, data)
		require.True(t, ok)
		seen[v] = true
	}
	assert.Len(t, seen, len(data))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
}

func TestShufflePreservesMultiset(t *testing.T) {
	e := randengine.New(42)
	for n := 0; n < 50; n++ {
		data := make([]int, n)
		for i := range data {
			data[i] = i % 7
		}
		original := slices.Clone(data)
		randengine.Shuffle(e, data)
		assert.ElementsMatch(t, original, data)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	b := slices.Clone(a)
	randengine.Shuffle(randengine.New(7), a)
	randengine.Shuffle(randengine.New(7), b)
	assert.Equal(t, a, b)
}

func TestShuffleMovesElements(t *testing.T) {
	e := randengine.New(42)
	data := make([]int, 100)
	for i := range data {
		data[i] = i
	}
	original := slices.Clone(data)
	randengine.Shuffle(e, data)
	assert.NotEqual(t, original, data)
}

func TestShuffleSmallSlicesDrawNothing(t *testing.T) {
	e := randengine.New(1)
	randengine.Shuffle(e, []int{})
	randengine.Shuffle(e, []int{1})
	assert.Equal(t, 624, e.Index())
}

func TestSample(t *testing.T) {
	e := randengine.New(42)
	data := []int{1, 2, 3, 4, 5}

	s, err := randengine.Sample(e, data, 3)
	require.NoError(t, err)
	assert.Len(t, s, 3)
	assert.Subset(t, data, s)
	assert.Len(t, uniq(s), 3)

	all, err := randengine.Sample(e, data, len(data))
	require.NoError(t, err)
	assert.ElementsMatch(t, data, all)

	none, err := randengine.Sample(e, data, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = randengine.Sample(e, data, 6)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = randengine.Sample(e, []int{}, 1)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = randengine.Sample(e, data, -1)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
}

func TestSampleWithReplacement(t *testing.T) {
	e := randengine.New(42)
	data := []int{1, 2, 3, 4, 5}
	s, err := randengine.SampleWithReplacement(e, data, 50)
	require.NoError(t, err)
	assert.Len(t, s, 50)
	assert.Subset(t, data, s)
	assert.Less(t, len(uniq(s)), 50)

	s, err = randengine.SampleWithReplacement(e, []int{}, 0)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = randengine.SampleWithReplacement(e, []int{}, 1)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = randengine.SampleWithReplacement(e, data, -1)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
}

func TestWeightedChoiceConvergence(t *testing.T) {
	e := randengine.New(42)
	choices := []string{"a", "b", "c"}
	weights := []uint32{20, 30, 50}
	counts := map[string]int{}
	const draws = 10000
	for range draws {
		v, err := randengine.WeightedChoice(e, choices, weights)
		require.NoError(t, err)
		counts[v]++
	}
	assert.InDelta(t, 0.2, float64(counts["a"])/draws, 0.05)
	assert.InDelta(t, 0.3, float64(counts["b"])/draws, 0.05)
	assert.InDelta(t, 0.5, float64(counts["c"])/draws, 0.05)
}

func TestWeightedChoiceZeroWeight(t *testing.T) {
	e := randengine.New(3)
	for range 1000 {
		v, err := randengine.WeightedChoice(e, []int{1, 2, 3}, []uint32{0, 5, 0})
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	}
}

func TestWeightedChoiceLargeWeights(t *testing.T) {
	e := randengine.New(3)
	weights := []uint32{0xffffffff, 0xffffffff, 0xffffffff}
	for range 100 {
		v, err := randengine.WeightedChoice(e, []int{0, 1, 2}, weights)
		require.NoError(t, err)
		assert.Contains(t, []int{0, 1, 2}, v)
	}
}

func TestWeightedChoiceErrors(t *testing.T) {
	e := randengine.New(1)
	_, err := randengine.WeightedChoice(e, []int{1, 2}, []uint32{1})
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = randengine.WeightedChoice(e, []int{}, []uint32{})
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = randengine.WeightedChoice(e, []int{1, 2}, []uint32{0, 0})
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	assert.Equal(t, 624, e.Index())
}

func TestDiscreteDistribution(t *testing.T) {
	e := randengine.New(42)
	weights := []float64{0.2, 0, 0.3, 0.5}
	counts := make([]int, len(weights))
	const draws = 20000
	for range draws {
		i, err := e.DiscreteDistribution(weights)
		require.NoError(t, err)
		counts[i]++
	}
	assert.Zero(t, counts[1])
	assert.InDelta(t, 0.2, float64(counts[0])/draws, 0.03)
	assert.InDelta(t, 0.3, float64(counts[2])/draws, 0.03)
	assert.InDelta(t, 0.5, float64(counts[3])/draws, 0.03)

	for _, bad := range [][]float64{nil, {0, 0}, {1, -1}, {math.MaxFloat64, math.MaxFloat64}} {
		_, err := e.DiscreteDistribution(bad)
		assert.ErrorIs(t, err, randengine.ErrInvalidArgument, "weights %v", bad)
	}
}

func TestWeightedSample(t *testing.T) {
	e := randengine.New(42)
	choices := []string{"a", "b", "c", "d", "e"}
	weights := []float64{1, 0, 2, 3, 4}

	for range 200 {
		s, err := randengine.WeightedSample(e, choices, weights, 3)
		require.NoError(t, err)
		assert.Len(t, s, 3)
		assert.Len(t, uniq(s), 3)
		assert.NotContains(t, s, "b")
	}

	all, err := randengine.WeightedSample(e, choices, weights, 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c", "d", "e"}, all)

	_, err = randengine.WeightedSample(e, choices, weights, 5)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = randengine.WeightedSample(e, choices, weights[:2], 1)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
}

func TestWeightedSampleFavoursHeavyItems(t *testing.T) {
	e := randengine.New(9)
	first := map[string]int{}
	const draws = 5000
	for range draws {
		s, err := randengine.WeightedSample(e, []string{"light", "heavy"}, []float64{1, 9}, 1)
		require.NoError(t, err)
		first[s[0]]++
	}
	assert.InDelta(t, 0.9, float64(first["heavy"])/draws, 0.03)
}

func uniq[T comparable](values []T) map[T]struct{} {
	m := make(map[T]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}
