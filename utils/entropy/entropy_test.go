package entropy_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/mtrand/mt19937"
	"github.com/tsinghua-fib-lab/mtrand/utils/entropy"
)

func TestCryptoReadsLittleEndian(t *testing.T) {
	src := entropy.Crypto{Reader: bytes.NewReader([]byte{0x2a, 0, 0, 0})}
	v, err := src.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}

func TestCryptoShortRead(t *testing.T) {
	src := entropy.Crypto{Reader: bytes.NewReader([]byte{1, 2})}
	_, err := src.Uint32()
	assert.ErrorContains(t, err, "read random seed")
}

func TestCryptoDefaultReader(t *testing.T) {
	a, err := mt19937.New(entropy.Crypto{})
	require.NoError(t, err)
	b, err := mt19937.New(entropy.Crypto{})
	require.NoError(t, err)
	// 两个独立实例的前若干输出几乎不可能完全相同
	same := true
	for range 4 {
		if a.Uint32() != b.Uint32() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestClock(t *testing.T) {
	at := time.Unix(0, 0x0000000100000002)
	src := entropy.Clock{Now: func() time.Time { return at }}
	v, err := src.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), v)

	_, err = entropy.Clock{}.Uint32()
	assert.NoError(t, err)
}

func TestFixedSeedsDeterministically(t *testing.T) {
	mt, err := mt19937.New(entropy.Fixed(42))
	require.NoError(t, err)
	assert.Equal(t, uint32(1608637542), mt.Uint32())
}

func TestFunc(t *testing.T) {
	boom := errors.New("boom")
	_, err := mt19937.New(entropy.Func(func() (uint32, error) { return 0, boom }))
	assert.ErrorIs(t, err, boom)

	_, err = entropy.Func(nil).Uint32()
	assert.Error(t, err)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "crypto", "clock"} {
		src, err := entropy.ByName(name)
		require.NoError(t, err)
		assert.NotNil(t, src)
	}
	_, err := entropy.ByName("dice")
	assert.Error(t, err)
}
