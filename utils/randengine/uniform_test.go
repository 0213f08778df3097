package randengine_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/mtrand/mt19937"
	"github.com/tsinghua-fib-lab/mtrand/utils/randengine"
)

func TestEngineSharesRawSequence(t *testing.T) {
	e := randengine.New(42)
	ref := mt19937.NewSeeded(42)
	for range 1000 {
		assert.Equal(t, ref.Uint32(), e.Uint32())
	}
}

func TestWrapSharesCursor(t *testing.T) {
	mt := mt19937.NewSeeded(3)
	e := randengine.Wrap(mt)
	e.Uint32()
	assert.Equal(t, 1, mt.Index())
	mt.Uint32()
	assert.Equal(t, 2, e.Index())
}

func TestInt(t *testing.T) {
	e := randengine.New(20)
	seen := map[int32]int{}
	for range 10000 {
		v, err := e.Int(-5, 5)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int32(-5))
		require.LessOrEqual(t, v, int32(5))
		seen[v]++
	}
	assert.Len(t, seen, 11)

	v, err := e.Int(7, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)

	_, err = e.Int(math.MinInt32, math.MaxInt32)
	assert.NoError(t, err)

	v, err = e.Int(math.MinInt32, math.MinInt32+1)
	require.NoError(t, err)
	assert.Contains(t, []int32{math.MinInt32, math.MinInt32 + 1}, v)
}

func TestIntRejectsInvertedRange(t *testing.T) {
	e := randengine.New(1)
	ref := e.Clone()
	_, err := e.Int(10, 5)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	// 参数错误不消耗随机数
	assert.Equal(t, ref.Uint32(), e.Uint32())
}

func TestUint(t *testing.T) {
	e := randengine.New(21)
	for range 10000 {
		v, err := e.Uint(100, 110)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, uint32(100))
		require.LessOrEqual(t, v, uint32(110))
	}
	_, err := e.Uint(0, math.MaxUint32)
	assert.NoError(t, err)
	_, err = e.Uint(2, 1)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
}

func TestRangedUint(t *testing.T) {
	e := randengine.New(40)
	for range 10000 {
		v, err := e.RangedUint(1, 10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, uint32(1))
		require.Less(t, v, uint32(10))
	}
	_, err := e.RangedUint(20, 10)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = e.RangedUint(10, 10)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
}

func TestIntn(t *testing.T) {
	e := randengine.New(8)
	counts := make([]int, 3)
	const draws = 30000
	for range draws {
		v, err := e.Intn(3)
		require.NoError(t, err)
		counts[v]++
	}
	for _, c := range counts {
		assert.InDelta(t, 1.0/3, float64(c)/draws, 0.02)
	}
	_, err := e.Intn(0)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
	_, err = e.Intn(-3)
	assert.ErrorIs(t, err, randengine.ErrInvalidArgument)
}

func TestFloatRanges(t *testing.T) {
	e := randengine.New(42)
	for range 100000 {
		f := e.Float32()
		require.GreaterOrEqual(t, f, float32(0))
		require.Less(t, f, float32(1))
		d := e.Float64()
		require.GreaterOrEqual(t, d, 0.0)
		require.Less(t, d, 1.0)
	}
}

func TestUint64Composition(t *testing.T) {
	e := randengine.New(11)
	ref := mt19937.NewSeeded(11)
	hi, lo := ref.Uint32(), ref.Uint32()
	assert.Equal(t, uint64(hi)<<32|uint64(lo), e.Uint64())
	hi, lo = ref.Uint32(), ref.Uint32()
	assert.Equal(t, int64(uint64(hi)<<32|uint64(lo)), e.Int64())
}

func TestBytes(t *testing.T) {
	e := randengine.New(5)
	ref := mt19937.NewSeeded(5)
	b := e.Bytes(7)
	require.Len(t, b, 7)
	for _, v := range b {
		assert.Equal(t, byte(ref.Uint32()), v)
	}
	for _, n := range []int{0, 1, 624, 1000} {
		assert.Len(t, e.Bytes(n), n)
	}
	assert.Panics(t, func() { e.Bytes(-1) })
}

func TestFill(t *testing.T) {
	e := randengine.New(9)
	ref := mt19937.NewSeeded(9)
	buf := make([]uint32, 10)
	e.Fill(buf)
	for _, v := range buf {
		assert.Equal(t, ref.Uint32(), v)
	}
}

func TestCharAndAlphaNumeric(t *testing.T) {
	e := randengine.New(60)
	letters := map[rune]bool{}
	for range 5000 {
		c := e.Char()
		require.True(t, c >= 'a' && c <= 'z', "char %q", c)
		letters[c] = true
	}
	assert.Len(t, letters, 26)

	s := e.AlphaNumeric(10)
	assert.Len(t, s, 10)
	long := e.AlphaNumeric(5000)
	for _, c := range long {
		require.True(t, strings.ContainsRune("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", c))
	}
	assert.Equal(t, "", e.AlphaNumeric(0))
}

func TestBool(t *testing.T) {
	e := randengine.New(42)
	trues := 0
	for range 10000 {
		v, err := e.Bool(0.5)
		require.NoError(t, err)
		if v {
			trues++
		}
	}
	assert.InDelta(t, 0.5, float64(trues)/10000, 0.03)

	for range 100 {
		v, err := e.Bool(0)
		require.NoError(t, err)
		assert.False(t, v)
		v, err = e.Bool(1)
		require.NoError(t, err)
		assert.True(t, v)
	}

	for _, p := range []float64{1.5, -0.1, math.NaN()} {
		_, err := e.Bool(p)
		assert.ErrorIs(t, err, randengine.ErrInvalidArgument, "p=%v", p)
	}
}

func TestPseudo(t *testing.T) {
	e := randengine.New(42)
	ref := mt19937.NewSeeded(42)
	var want uint32
	for range 32 {
		want ^= ref.Uint32()
	}
	assert.Equal(t, want, e.Pseudo())
	assert.Equal(t, 32, e.Index())
}
