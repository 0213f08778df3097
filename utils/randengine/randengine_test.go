package randengine_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/mtrand/mt19937"
	"github.com/tsinghua-fib-lab/mtrand/utils/randengine"
)

type fixedSource uint32

func (s fixedSource) Uint32() (uint32, error) { return uint32(s), nil }

func TestNewFromEntropy(t *testing.T) {
	e, err := randengine.NewFromEntropy(fixedSource(42))
	require.NoError(t, err)
	assert.Equal(t, uint32(1608637542), e.Uint32())

	_, err = randengine.NewFromEntropy(nil)
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	e := randengine.New(99)
	for range 700 {
		e.Uint32()
	}
	c := e.Clone()
	for range 1000 {
		assert.Equal(t, e.Uint32(), c.Uint32())
	}
	e.Uint32()
	assert.NotEqual(t, e.Index(), c.Index())
}

func TestPTrue(t *testing.T) {
	e := randengine.New(1)
	assert.False(t, e.PTrue(0))
	assert.True(t, e.PTrue(1))
	assert.Panics(t, func() { e.PTrue(1.5) })
}

func TestSafeMethods(t *testing.T) {
	e := randengine.New(42)
	const workers, draws = 8, 1000

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range draws {
				e.Uint32Safe()
				n, err := e.IntnSafe(10)
				if assert.NoError(t, err) {
					assert.Less(t, n, 10)
				}
				f := e.Float64Safe()
				assert.Less(t, f, 1.0)
				e.PTrueSafe(0.5)
			}
		}()
	}
	wg.Wait()

	// 每轮至少6次原始抽取，每624次旋转一次
	assert.GreaterOrEqual(t, e.Index(), 0)
	assert.LessOrEqual(t, e.Index(), mt19937.N)
}
