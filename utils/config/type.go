package config

import (
	"github.com/tsinghua-fib-lab/mtrand/mt19937"
)

// Kind 抽样类型
type Kind string

const (
	KindRaw                   Kind = "raw"                     // 原始32位输出
	KindPseudo                Kind = "pseudo"                  // 32次原始输出的异或
	KindBool                  Kind = "bool"                    // 以概率p返回true
	KindInt                   Kind = "int"                     // [min, max]上的int32
	KindUint                  Kind = "uint"                    // [min, max]上的uint32
	KindRangedUint            Kind = "ranged_uint"             // [min, max)上的uint32
	KindIntn                  Kind = "intn"                    // [0, max)上的整数
	KindFloat32               Kind = "float32"                 // [0, 1)上的单精度浮点数
	KindFloat64               Kind = "float64"                 // [0, 1)上的双精度浮点数
	KindInt64                 Kind = "int64"                   // 64位有符号整数
	KindUint64                Kind = "uint64"                  // 64位无符号整数
	KindBytes                 Kind = "bytes"                   // 长度为len的字节串
	KindChar                  Kind = "char"                    // 小写字母
	KindString                Kind = "string"                  // 长度为len的字母数字串
	KindChoose                Kind = "choose"                  // 从values中均匀选取
	KindShuffle               Kind = "shuffle"                 // 打乱values
	KindSample                Kind = "sample"                  // 从values中无放回抽取k个
	KindSampleWithReplacement Kind = "sample_with_replacement" // 从values中有放回抽取k个
	KindWeighted              Kind = "weighted"                // 按整数权重选取
	KindWeightedSample        Kind = "weighted_sample"         // 按浮点权重无放回抽取k个
	KindNormal                Kind = "normal"                  // 正态分布
	KindExponential           Kind = "exponential"             // 指数分布
	KindPoisson               Kind = "poisson"                 // 泊松分布
)

// Kinds 全部支持的抽样类型
var Kinds = []Kind{
	KindRaw, KindPseudo, KindBool, KindInt, KindUint, KindRangedUint, KindIntn,
	KindFloat32, KindFloat64, KindInt64, KindUint64, KindBytes, KindChar, KindString,
	KindChoose, KindShuffle, KindSample, KindSampleWithReplacement, KindWeighted,
	KindWeightedSample, KindNormal, KindExponential, KindPoisson,
}

// Numeric 该类型的结果是否为单个数值，可以计算统计摘要
func (k Kind) Numeric() bool {
	switch k {
	case KindRaw, KindPseudo, KindInt, KindUint, KindRangedUint, KindIntn,
		KindFloat32, KindFloat64, KindInt64, KindUint64,
		KindNormal, KindExponential, KindPoisson:
		return true
	}
	return false
}

const (
	SeedModeCanonical  = "canonical"  // 标准Knuth初始化
	SeedModeSaturating = "saturating" // 乘法溢出时饱和为0xffffffff，用于复现旧序列
)

// Generator 生成器配置
// 功能：定义生成器的构造方式
// 说明：优先级为 Restore > Seed > Entropy
type Generator struct {
	Seed     *uint32         `yaml:"seed,omitempty"`      // 种子，为空则从熵源获取
	SeedMode string          `yaml:"seed_mode,omitempty"` // canonical（默认）或saturating
	Entropy  string          `yaml:"entropy,omitempty"`   // 熵源：crypto（默认）或clock
	Params   *mt19937.Params `yaml:"params,omitempty"`    // 算法常量，仅做校验
	Restore  string          `yaml:"restore,omitempty"`   // 从该快照文件恢复
}

// Draw 单项抽样任务
// 功能：描述一种抽样以及重复次数
// 说明：各字段只在对应类型下生效，参数本身的合法性由随机数引擎在运行时检查
type Draw struct {
	Name    string    `yaml:"name"`              // 名称，在全部任务中唯一
	Kind    Kind      `yaml:"kind"`              // 类型
	Count   int       `yaml:"count,omitempty"`   // 重复次数，默认为1
	Min     int64     `yaml:"min,omitempty"`     // 区间下界（int/uint/ranged_uint）
	Max     int64     `yaml:"max,omitempty"`     // 区间上界（int/uint/ranged_uint/intn）
	P       float64   `yaml:"p,omitempty"`       // 概率（bool）
	Mu      float64   `yaml:"mu,omitempty"`      // 均值（normal）
	Sigma   float64   `yaml:"sigma,omitempty"`   // 标准差（normal）
	Rate    float64   `yaml:"rate,omitempty"`    // 速率（exponential）
	Mean    float64   `yaml:"mean,omitempty"`    // 均值（poisson）
	Len     int       `yaml:"len,omitempty"`     // 长度（bytes/string）
	K       int       `yaml:"k,omitempty"`       // 抽取数量（sample系列）
	Values  []string  `yaml:"values,omitempty"`  // 候选元素（集合类）
	Weights []float64 `yaml:"weights,omitempty"` // 权重（weighted系列）
	Summary bool      `yaml:"summary,omitempty"` // 是否计算统计摘要，仅对数值类型有效
}

// Output 输出配置
// 功能：定义结果与快照的输出位置
// 说明：File为空时写到标准输出；URI非空时额外写入MongoDB
type Output struct {
	Format   string `yaml:"format,omitempty"`   // json、yaml（默认）或toml
	File     string `yaml:"file,omitempty"`     // 结果文件路径
	Snapshot string `yaml:"snapshot,omitempty"` // 结束后保存状态快照的路径，扩展名决定格式
	URI      string `yaml:"uri,omitempty"`      // MongoDB连接字符串
	DB       string `yaml:"db,omitempty"`       // 数据库名
	Col      string `yaml:"col,omitempty"`      // 集合名
}

// GetDb 获取数据库名
func (o Output) GetDb() string {
	if o.DB == "" {
		return "mtrand"
	}
	return o.DB
}

// GetColl 获取集合名
func (o Output) GetColl() string {
	if o.Col == "" {
		return "draws"
	}
	return o.Col
}

// Config YAML配置文件的根结构
// 功能：定义一次抽样任务的全部配置
// 说明：包含生成器、抽样列表和输出三部分
type Config struct {
	Generator Generator `yaml:"generator"` // 生成器
	Draws     []Draw    `yaml:"draws"`     // 抽样任务，按顺序执行
	Output    Output    `yaml:"output"`    // 输出
}
