// 随机数引擎，在MT19937状态引擎之上提供常用的派生随机数生成方法
package randengine

import (
	"flag"
	"math"
	"sync"

	"github.com/tsinghua-fib-lab/mtrand/mt19937"
)

var (
	seedOffset = flag.Uint("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 功能：把MT19937输出的32位原始随机数映射为区间整数、浮点数、字节、字符、抽样和各类分布
// 说明：独占持有一个*mt19937.MT19937，所有派生操作都只通过Uint32()取熵，
// 因此同一种子下的全部输出序列可复现；非线程安全，需要共享时使用*Safe方法
type Engine struct {
	*mt19937.MT19937            // 底层状态引擎
	mtx              sync.Mutex // 互斥锁，用于*Safe方法
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 算法说明：
// 1. 应用种子偏移量：将种子偏移量加到基础种子上
// 2. 以调整后的种子播种MT19937
// 3. 初始化引擎：包装状态引擎和互斥锁
// 说明：种子偏移量允许在不修改代码的情况下调整随机数序列
func New(seed uint32) *Engine {
	return &Engine{MT19937: mt19937.NewSeeded(seed + SeedOffset())}
}

// SeedOffset 返回命令行参数rand.seed_offset给出的种子偏移量
func SeedOffset() uint32 {
	return uint32(*seedOffset)
}

// Wrap 包装已有的状态引擎
// 说明：引擎与调用方共享同一个状态，任何一方的抽取都会推进同一个游标
func Wrap(mt *mt19937.MT19937) *Engine {
	return &Engine{MT19937: mt}
}

// NewFromEntropy 使用外部熵源创建随机数引擎
func NewFromEntropy(src mt19937.EntropySource) (*Engine, error) {
	mt, err := mt19937.New(src)
	if err != nil {
		return nil, err
	}
	return Wrap(mt), nil
}

// Clone 复制引擎，新引擎与原引擎后续输出完全相同且互不影响
func (e *Engine) Clone() *Engine {
	return Wrap(e.MT19937.Clone())
}

// DiscreteDistribution 按给定概率分布生成随机数（非线程安全）
// 功能：根据权重数组生成离散分布的随机数
// 参数：weight-权重数组，每个元素表示对应索引的概率权重
// 返回：随机生成的索引值（0到len(weight)-1）
// 算法说明：
// 1. 参数检查：权重非空、非负、有限且总和大于0
// 2. 计算总权重：遍历权重数组计算总和
// 3. 生成随机数：在[0, 总权重)范围内生成随机数
// 4. 累积概率：遍历权重数组，累积概率直到超过随机数
// 5. 返回索引：返回第一个累积概率超过随机数的索引
// 6. 浮点舍入导致未命中时返回最后一个正权重的索引
// 说明：使用累积分布函数的方法实现离散概率分布
func (e *Engine) DiscreteDistribution(weight []float64) (int, error) {
	if len(weight) == 0 {
		return 0, argError("DiscreteDistribution", "weights must not be empty")
	}
	total := .0
	last := -1
	for i, w := range weight {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, argError("DiscreteDistribution", "weight[%d]=%v must be finite and non-negative", i, w)
		}
		if w > 0 {
			last = i
		}
		total += w
	}
	if last < 0 {
		return 0, argError("DiscreteDistribution", "total weight must be positive")
	}
	if math.IsInf(total, 0) {
		return 0, argError("DiscreteDistribution", "total weight %v must be finite", total)
	}
	random := total * e.Float64()
	sum := 0.
	for i, w := range weight {
		sum += w
		if sum > random {
			return i, nil
		}
	}
	return last, nil
}

// PTrue 以指定概率返回true（非线程安全）
// 功能：根据给定概率返回布尔值
// 参数：p-返回true的概率（0.0到1.0之间）
// 返回：true或false
// 说明：与Bool相同，但概率非法视为编程错误直接panic
func (e *Engine) PTrue(p float64) bool {
	v, err := e.Bool(p)
	if err != nil {
		log.Panicf("randengine: PTrue: %v", err)
	}
	return v
}

// Uint32Safe 生成32位随机数（线程安全）
func (e *Engine) Uint32Safe() uint32 {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.Uint32()
}

// PTrueSafe 以指定概率返回true（线程安全）
// 功能：根据给定概率返回布尔值，支持多线程安全访问
// 参数：p-返回true的概率（0.0到1.0之间）
// 返回：true或false
// 说明：线程安全版本的PTrue方法
func (e *Engine) PTrueSafe(p float64) bool {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.PTrue(p)
}

// IntnSafe 随机生成整数（线程安全）
// 功能：在指定范围内生成随机整数，支持多线程安全访问
// 参数：n-范围上限（不包含）
// 返回：[0, n)范围内的随机整数
// 说明：线程安全版本的Intn方法
func (e *Engine) IntnSafe(n int) (int, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.Intn(n)
}

// Float64Safe 随机生成浮点数（线程安全）
// 功能：生成[0.0, 1.0)范围内的随机浮点数，支持多线程安全访问
// 返回：[0.0, 1.0)范围内的随机浮点数
// 说明：线程安全版本的Float64方法
func (e *Engine) Float64Safe() float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.Float64()
}
