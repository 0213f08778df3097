package randengine

import (
	"math"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/mtrand/utils/container"
)

// Choose 从values中均匀选取一个元素
// 返回：values为空时返回零值和false；不修改values
func Choose[T any](e *Engine, values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[e.intn(len(values))], true
}

// Shuffle 原地打乱values（Fisher–Yates）
// 算法说明：i从len-1递减到1，每次与[0, i]中均匀选取的位置交换
func Shuffle[T any](e *Engine, values []T) {
	for i := len(values) - 1; i > 0; i-- {
		j := e.intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// Sample 无放回抽取k个元素
// 功能：在values的副本上执行前k步Fisher–Yates，values本身不变
// 返回：k为负或大于len(values)时返回参数错误
func Sample[T any](e *Engine, values []T, k int) ([]T, error) {
	if k < 0 || k > len(values) {
		return nil, argError("Sample", "k %d must be in [0, %d]", k, len(values))
	}
	pool := make([]T, len(values))
	copy(pool, values)
	for i := 0; i < k; i++ {
		j := i + e.intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k], nil
}

// SampleWithReplacement 有放回抽取k个元素，每次都从全部元素中均匀选取
func SampleWithReplacement[T any](e *Engine, values []T, k int) ([]T, error) {
	if k < 0 {
		return nil, argError("SampleWithReplacement", "k %d must not be negative", k)
	}
	if k > 0 && len(values) == 0 {
		return nil, argError("SampleWithReplacement", "values must not be empty")
	}
	res := make([]T, k)
	for i := range res {
		res[i] = values[e.intn(len(values))]
	}
	return res, nil
}

// WeightedChoice 按整数权重选取一个元素
// 功能：在[0, 权重和)上均匀抽取r，返回第一个累积权重大于r的元素
// 参数：choices-候选元素，weights-对应权重
// 返回：长度不一致、为空或权重和为0时返回参数错误
func WeightedChoice[T any](e *Engine, choices []T, weights []uint32) (T, error) {
	var zero T
	if len(choices) != len(weights) {
		return zero, argError("WeightedChoice", "choices and weights must have equal length, got %d and %d", len(choices), len(weights))
	}
	if len(choices) == 0 {
		return zero, argError("WeightedChoice", "choices must not be empty")
	}
	total := lo.SumBy(weights, func(w uint32) uint64 { return uint64(w) })
	if total == 0 {
		return zero, argError("WeightedChoice", "total weight must be positive")
	}
	r := e.uint64n(total)
	var cumulative uint64
	for i, w := range weights {
		cumulative += uint64(w)
		if cumulative > r {
			return choices[i], nil
		}
	}
	// 累积和最终等于total且r<total，不可能到达此处
	log.Panicf("randengine: WeightedChoice: cumulative %d random %d", cumulative, r)
	return zero, nil
}

// WeightedSample 按浮点权重无放回抽取k个元素
// 功能：每个元素的被选概率与其权重成正比，且同一元素最多被选一次
// 参数：choices-候选元素，weights-对应权重（非负有限值），k-抽取数量
// 返回：按被选中的先后顺序排列的k个元素
// 算法说明：
// 1. 参数检查：长度一致、权重合法、正权重元素数量不少于k
// 2. Efraimidis–Spirakis：为每个正权重元素生成键 ln(u)/w，u ∈ (0, 1]
// 3. 使用容量为k的小顶堆保留键最大的k个元素
// 4. 按键从大到小输出
// 说明：权重为0的元素永远不会被选中
func WeightedSample[T any](e *Engine, choices []T, weights []float64, k int) ([]T, error) {
	if len(choices) != len(weights) {
		return nil, argError("WeightedSample", "choices and weights must have equal length, got %d and %d", len(choices), len(weights))
	}
	positive := 0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, argError("WeightedSample", "weight[%d]=%v must be finite and non-negative", i, w)
		}
		if w > 0 {
			positive++
		}
	}
	if k < 0 || k > positive {
		return nil, argError("WeightedSample", "k %d must be in [0, %d]", k, positive)
	}
	top := container.NewTopK[T](k)
	for i, w := range weights {
		if w == 0 {
			continue
		}
		u := 1 - e.Float64()
		top.Offer(choices[i], math.Log(u)/w)
	}
	return top.Drain(), nil
}
