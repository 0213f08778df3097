package randengine_test

import (
	"testing"

	"github.com/tsinghua-fib-lab/mtrand/mt19937"
	"github.com/tsinghua-fib-lab/mtrand/utils/entropy"
	"github.com/tsinghua-fib-lab/mtrand/utils/randengine"
)

func BenchmarkNew(b *testing.B) {
	for range b.N {
		if _, err := randengine.NewFromEntropy(entropy.Crypto{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUint32(b *testing.B) {
	e := randengine.New(42)
	for range b.N {
		e.Uint32()
	}
}

func BenchmarkTwist(b *testing.B) {
	mt := mt19937.NewSeeded(42)
	for range b.N {
		mt.Twist()
	}
}

func BenchmarkBool(b *testing.B) {
	e := randengine.New(42)
	for range b.N {
		_, _ = e.Bool(0.5)
	}
}

func BenchmarkInt(b *testing.B) {
	e := randengine.New(42)
	for range b.N {
		_, _ = e.Int(1, 10)
	}
}

func BenchmarkFloat64(b *testing.B) {
	e := randengine.New(42)
	for range b.N {
		e.Float64()
	}
}

func BenchmarkBytes(b *testing.B) {
	e := randengine.New(42)
	for range b.N {
		e.Bytes(16)
	}
}

func BenchmarkChar(b *testing.B) {
	e := randengine.New(42)
	for range b.N {
		e.Char()
	}
}

func BenchmarkChoose(b *testing.B) {
	e := randengine.New(42)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for range b.N {
		randengine.Choose(e, values)
	}
}

func BenchmarkPseudo(b *testing.B) {
	e := randengine.New(42)
	for range b.N {
		e.Pseudo()
	}
}

func BenchmarkWeightedSample(b *testing.B) {
	e := randengine.New(42)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	weights := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for range b.N {
		_, _ = randengine.WeightedSample(e, values, weights, 3)
	}
}
