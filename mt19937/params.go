package mt19937

import (
	"errors"
	"fmt"
)

// MT19937 的标准算法常量
const (
	N              = 624        // 状态数组长度
	M              = 397        // 递推偏移量
	MatrixA        = 0x9908b0df // 旋转矩阵A
	UpperMask      = 0x80000000 // 最高位掩码
	LowerMask      = 0x7fffffff // 低31位掩码
	TemperingMaskB = 0x9d2c5680 // 回火掩码B
	TemperingMaskC = 0xefc60000 // 回火掩码C

	DefaultSeed = 5489 // 未播种时的默认种子

	unseeded = N + 1 // 未初始化的index哨兵值
)

// Params 算法常量配置
// 功能：以结构化数据的形式暴露MT19937的算法常量，便于序列化、展示与测试
// 说明：常量本身即是MT19937的定义，修改后得到的是另一个未经验证的生成器；
// 引擎始终使用包内常量，Params只做校验与记录
type Params struct {
	N              int    `yaml:"n" json:"n" toml:"n"`                                        // 状态数组长度
	M              int    `yaml:"m" json:"m" toml:"m"`                                        // 递推偏移量
	MatrixA        uint32 `yaml:"matrix_a" json:"matrix_a" toml:"matrix_a"`                   // 旋转矩阵A，最高位必须为1
	UpperMask      uint32 `yaml:"upper_mask" json:"upper_mask" toml:"upper_mask"`             // 最高位掩码
	LowerMask      uint32 `yaml:"lower_mask" json:"lower_mask" toml:"lower_mask"`             // 低31位掩码
	TemperingMaskB uint32 `yaml:"tempering_mask_b" json:"tempering_mask_b" toml:"tempering_mask_b"` // 回火掩码B
	TemperingMaskC uint32 `yaml:"tempering_mask_c" json:"tempering_mask_c" toml:"tempering_mask_c"` // 回火掩码C
}

// DefaultParams 返回标准MT19937常量
func DefaultParams() Params {
	return Params{
		N:              N,
		M:              M,
		MatrixA:        MatrixA,
		UpperMask:      UpperMask,
		LowerMask:      LowerMask,
		TemperingMaskB: TemperingMaskB,
		TemperingMaskC: TemperingMaskC,
	}
}

// NewParams 创建并校验自定义常量
// 功能：按给定字段构造Params并立即校验
// 返回：校验通过的Params；失败时返回*ConfigurationError（多个错误以errors.Join合并）
func NewParams(n, m int, matrixA, upperMask, lowerMask, temperingMaskB, temperingMaskC uint32) (Params, error) {
	p := Params{
		N:              n,
		M:              m,
		MatrixA:        matrixA,
		UpperMask:      upperMask,
		LowerMask:      lowerMask,
		TemperingMaskB: temperingMaskB,
		TemperingMaskC: temperingMaskC,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate 校验常量
// 功能：检查所有字段是否满足MT19937的约束
// 返回：nil表示合法，否则返回所有违规项合并后的错误
// 算法说明：
// 1. n >= 1
// 2. 1 <= m < n
// 3. matrix_a 最高位为1
// 4. 四个掩码必须等于标准值
func (p Params) Validate() error {
	return errors.Join(
		checkN(p.N),
		checkM(p.M, p.N),
		checkMatrixA(p.MatrixA),
		checkMask("upper_mask", p.UpperMask, UpperMask),
		checkMask("lower_mask", p.LowerMask, LowerMask),
		checkMask("tempering_mask_b", p.TemperingMaskB, TemperingMaskB),
		checkMask("tempering_mask_c", p.TemperingMaskC, TemperingMaskC),
	)
}

// IsCanonical 是否与标准MT19937常量完全一致
func (p Params) IsCanonical() bool {
	return p == DefaultParams()
}

// SetN 设置状态数组长度，非法时保持原值
func (p *Params) SetN(n int) error {
	if err := checkN(n); err != nil {
		return err
	}
	p.N = n
	return nil
}

// SetM 设置递推偏移量，需满足 1 <= m < n
func (p *Params) SetM(m int) error {
	if err := checkM(m, p.N); err != nil {
		return err
	}
	p.M = m
	return nil
}

// SetMatrixA 设置旋转矩阵A
func (p *Params) SetMatrixA(v uint32) error {
	if err := checkMatrixA(v); err != nil {
		return err
	}
	p.MatrixA = v
	return nil
}

func (p *Params) SetUpperMask(v uint32) error {
	if err := checkMask("upper_mask", v, UpperMask); err != nil {
		return err
	}
	p.UpperMask = v
	return nil
}

func (p *Params) SetLowerMask(v uint32) error {
	if err := checkMask("lower_mask", v, LowerMask); err != nil {
		return err
	}
	p.LowerMask = v
	return nil
}

func (p *Params) SetTemperingMaskB(v uint32) error {
	if err := checkMask("tempering_mask_b", v, TemperingMaskB); err != nil {
		return err
	}
	p.TemperingMaskB = v
	return nil
}

func (p *Params) SetTemperingMaskC(v uint32) error {
	if err := checkMask("tempering_mask_c", v, TemperingMaskC); err != nil {
		return err
	}
	p.TemperingMaskC = v
	return nil
}

// String 以十六进制输出掩码，便于调试
func (p Params) String() string {
	return fmt.Sprintf(
		"Params{n: %d, m: %d, matrix_a: 0x%x, upper_mask: 0x%x, lower_mask: 0x%x, tempering_mask_b: 0x%x, tempering_mask_c: 0x%x}",
		p.N, p.M, p.MatrixA, p.UpperMask, p.LowerMask, p.TemperingMaskB, p.TemperingMaskC,
	)
}

func checkN(n int) error {
	if n < 1 {
		return configError("n", "must be at least 1, got %d", n)
	}
	return nil
}

func checkM(m, n int) error {
	if m < 1 || m >= n {
		return configError("m", "must be at least 1 and less than n (%d), got %d", n, m)
	}
	return nil
}

func checkMatrixA(v uint32) error {
	if v&UpperMask == 0 {
		return configError("matrix_a", "must have its highest bit set, got 0x%x", v)
	}
	return nil
}

func checkMask(field string, v, want uint32) error {
	if v != want {
		return configError(field, "must be 0x%x, got 0x%x", want, v)
	}
	return nil
}
