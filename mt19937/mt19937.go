// Package mt19937 实现32位梅森旋转算法（MT19937）的状态引擎
//
// 引擎只负责维护624个字的状态数组与读取游标，并提供播种、旋转（twist）与回火提取三个操作，
// 是上层派生随机数的唯一熵来源。
// 注意：MT19937 不是密码学安全的随机数生成器，观察624个连续输出即可恢复全部状态。
package mt19937

import (
	"fmt"
	"strings"
)

// EntropySource 非确定性种子来源
// 功能：为New提供一个不可预测的32位种子
// 说明：由调用方注入，引擎本身不依赖任何系统熵
type EntropySource interface {
	Uint32() (uint32, error)
}

// MT19937 梅森旋转状态引擎
// 功能：保存状态数组与游标，产生均匀分布的32位随机数
// 说明：值语义，复制即得到输出序列完全相同的独立生成器；非并发安全，需由单一调用方独占使用
type MT19937 struct {
	state [N]uint32 // 工作状态
	index int       // 下一个被提取的字的位置，N表示需要旋转，N+1表示尚未播种
}

// New 使用外部熵源创建生成器
// 功能：从熵源读取一个种子并完成播种
// 参数：src-熵源
// 返回：已播种的生成器；熵源失败时返回包装后的错误
func New(src EntropySource) (*MT19937, error) {
	if src == nil {
		return nil, fmt.Errorf("mt19937: nil entropy source")
	}
	seed, err := src.Uint32()
	if err != nil {
		return nil, fmt.Errorf("mt19937: read seed: %w", err)
	}
	return NewSeeded(seed), nil
}

// NewSeeded 使用给定种子创建生成器
func NewSeeded(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// NewUnseeded 创建未播种的生成器
// 说明：首次提取时自动以DefaultSeed(5489)播种，与参考实现的惰性默认播种一致
func NewUnseeded() *MT19937 {
	return &MT19937{index: unseeded}
}

// Seed 以32位种子确定性地初始化全部状态
// 功能：按 s[i] = 1812433253 * (s[i-1] ^ (s[i-1] >> 30)) + i 递推填充状态数组（模2^32）
// 参数：seed-种子
// 说明：完成后index=N，下一次提取前会先执行一次旋转；相同种子总是得到相同的输出序列。
// 种子42的首个输出为1608637542；旧版数据中种子42对应的848288234来自饱和播种，需要改用SeedSaturating复现
func (mt *MT19937) Seed(seed uint32) {
	mt.state[0] = seed
	for i := 1; i < N; i++ {
		prev := mt.state[i-1]
		mt.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = N
}

// SeedSaturating 以旧版规则初始化状态
// 功能：与Seed使用相同递推式，但乘法溢出32位时该字直接饱和为0xFFFFFFFF（不再加i）
// 参数：seed-种子
// 说明：仅用于复现旧版本生成的序列（例如种子42的首个输出为848288234），
// 新代码应使用Seed，它与标准MT19937参考实现一致
func (mt *MT19937) SeedSaturating(seed uint32) {
	mt.state[0] = seed
	for i := 1; i < N; i++ {
		prev := mt.state[i-1]
		v := uint64(1812433253) * uint64(prev^(prev>>30))
		if v > 0xffffffff {
			mt.state[i] = 0xffffffff
		} else {
			mt.state[i] = uint32(v) + uint32(i)
		}
	}
	mt.index = N
}

// Twist 旋转，整体重新生成状态数组
// 功能：执行MT19937的批量状态转移
// 算法说明：
// 1. 对 i = 0..N-1 顺序处理
// 2. x = s[i]的最高位 | s[(i+1)%N]的低31位
// 3. xA = x >> 1，若x为奇数则 xA ^= MatrixA
// 4. s[i] = s[(i+M)%N] ^ xA
// 5. 完成后index置0
// 说明：必须原地、按顺序更新。回绕部分会读到本轮已经更新过的字，这正是递推式的定义，
// 不能先整体拷贝再计算
func (mt *MT19937) Twist() {
	for i := 0; i < N; i++ {
		x := (mt.state[i] & UpperMask) | (mt.state[(i+1)%N] & LowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= MatrixA
		}
		mt.state[i] = mt.state[(i+M)%N] ^ xA
	}
	mt.index = 0
}

// Uint32 提取下一个32位随机数
// 功能：读取当前游标处的状态字并回火后返回
// 返回：[0, 2^32)上均匀分布的随机数
// 算法说明：
// 1. 若index >= N则先旋转；若从未播种则先以DefaultSeed播种
// 2. 读取 y = s[index]，index加一
// 3. 回火：y ^= y>>11; y ^= (y<<7)&B; y ^= (y<<15)&C; y ^= y>>18
func (mt *MT19937) Uint32() uint32 {
	if mt.index >= N {
		if mt.index == unseeded {
			mt.Seed(DefaultSeed)
		}
		mt.Twist()
	}

	y := mt.state[mt.index]
	mt.index++
	return temper(y)
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & TemperingMaskB
	y ^= (y << 15) & TemperingMaskC
	y ^= y >> 18
	return y
}

// Index 当前游标
func (mt *MT19937) Index() int {
	return mt.index
}

// SetIndex 手动设置游标
// 参数：index-新游标，取值范围[0, N+1]
// 返回：越界时返回*ConfigurationError，游标保持不变
// 说明：用于检查或回放状态，随意设置会破坏输出序列
func (mt *MT19937) SetIndex(index int) error {
	if index < 0 || index > unseeded {
		return configError("index", "must be in [0, %d], got %d", unseeded, index)
	}
	mt.index = index
	return nil
}

// Words 返回状态数组的副本
func (mt *MT19937) Words() [N]uint32 {
	return mt.state
}

// Clone 复制出一个独立的生成器，其后续输出与原生成器完全相同
func (mt *MT19937) Clone() *MT19937 {
	c := *mt
	return &c
}

// String 调试用的可读表示，不是稳定的序列化格式
func (mt *MT19937) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MT19937{index: %d, state: [", mt.index)
	for i, w := range mt.state {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", w)
	}
	b.WriteString("]}")
	return b.String()
}
