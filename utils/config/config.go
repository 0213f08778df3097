package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/mtrand/utils"
	"github.com/tsinghua-fib-lab/mtrand/utils/codec"
	"github.com/tsinghua-fib-lab/mtrand/utils/entropy"
	"gopkg.in/yaml.v2"
)

var log = logrus.WithField("module", "config")

// RuntimeConfig 运行时配置
// 功能：存储经过默认值填充与校验后的配置
// 说明：Format为解析后的输出格式，避免各处重复解析字符串
type RuntimeConfig struct {
	All    Config       // 全部配置
	G      Generator    // 生成器配置
	Format codec.Format // 输出格式
}

// NewRuntimeConfig 根据配置创建运行时配置
// 功能：填充默认值、校验配置并解析输出格式
// 参数：config-原始配置对象
// 返回：运行时配置指针；配置非法时返回错误
// 算法说明：
// 1. 填充默认值：重复次数默认为1，种子模式默认为canonical，输出格式默认为yaml
// 2. 校验配置
// 3. 解析输出格式
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	config.setDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	f, err := codec.ParseFormat(config.Output.Format)
	if err != nil {
		return nil, err
	}
	return &RuntimeConfig{
		All:    config,
		G:      config.Generator,
		Format: f,
	}, nil
}

// Load 从YAML数据解析配置，未知字段视为错误
func Load(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// LoadFile 从YAML文件解析配置
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Load(data)
}

func (c *Config) setDefaults() {
	if c.Generator.SeedMode == "" {
		c.Generator.SeedMode = SeedModeCanonical
	}
	if c.Output.Format == "" {
		c.Output.Format = string(codec.YAML)
	}
	for i := range c.Draws {
		if c.Draws[i].Count == 0 {
			c.Draws[i].Count = 1
		}
	}
}

// Validate 校验配置
// 功能：检查生成器、抽样任务与输出配置，返回全部问题
// 返回：所有问题通过errors.Join合并后的错误
// 说明：只检查配置本身能否被执行，抽样参数的取值（如min>max）由随机数引擎在运行时报告
func (c Config) Validate() error {
	var errs []error
	g := c.Generator
	switch g.SeedMode {
	case "", SeedModeCanonical, SeedModeSaturating:
	default:
		errs = append(errs, fmt.Errorf("generator.seed_mode: unknown mode %q", g.SeedMode))
	}
	if _, err := entropy.ByName(g.Entropy); err != nil {
		errs = append(errs, fmt.Errorf("generator.entropy: %w", err))
	}
	if g.Params != nil {
		if err := g.Params.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("generator.params: %w", err))
		}
	}
	if len(c.Draws) == 0 {
		errs = append(errs, errors.New("draws: at least one draw is required"))
	}
	names := make(map[string]struct{}, len(c.Draws))
	for i, d := range c.Draws {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("draws[%d].name: must not be empty", i))
		} else if _, ok := names[d.Name]; ok {
			errs = append(errs, fmt.Errorf("draws[%d].name: duplicate name %q", i, d.Name))
		}
		names[d.Name] = struct{}{}
		if err := d.validate(); err != nil {
			errs = append(errs, fmt.Errorf("draws[%d] (%s): %w", i, d.Name, err))
		}
	}
	if c.Output.Format != "" {
		if _, err := codec.ParseFormat(c.Output.Format); err != nil {
			errs = append(errs, fmt.Errorf("output.format: %w", err))
		}
	}
	if c.Output.Snapshot != "" {
		if _, err := codec.FormatOf(c.Output.Snapshot); err != nil {
			errs = append(errs, fmt.Errorf("output.snapshot: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (d Draw) validate() error {
	if !lo.Contains(Kinds, d.Kind) {
		return fmt.Errorf("kind: unknown kind %q", d.Kind)
	}
	if d.Count < 0 {
		return fmt.Errorf("count: must not be negative, got %d", d.Count)
	}
	if d.Summary && !d.Kind.Numeric() {
		return fmt.Errorf("summary: kind %q is not numeric", d.Kind)
	}
	switch d.Kind {
	case KindInt:
		if d.Min < math.MinInt32 || d.Max > math.MaxInt32 {
			return fmt.Errorf("min/max: must fit in int32, got [%d, %d]", d.Min, d.Max)
		}
	case KindUint, KindRangedUint:
		if d.Min < 0 || d.Max > math.MaxUint32 {
			return fmt.Errorf("min/max: must fit in uint32, got [%d, %d]", d.Min, d.Max)
		}
	case KindBytes, KindString:
		if d.Len < 0 {
			return fmt.Errorf("len: must not be negative, got %d", d.Len)
		}
	case KindWeighted:
		for i, w := range d.Weights {
			if w < 0 || w > math.MaxUint32 || w != math.Trunc(w) {
				return fmt.Errorf("weights[%d]: must be a whole number in [0, %d], got %v", i, uint32(math.MaxUint32), w)
			}
		}
	}
	return nil
}

// Select 只保留指定名称的抽样任务
// 参数：names-任务名称，为空时保留全部
// 返回：按names顺序排列的任务；存在未知名称时返回错误
func (c *Config) Select(names []string) error {
	byName := lo.KeyBy(c.Draws, func(d Draw) string { return d.Name })
	draws, failed := utils.Find(byName, c.Draws, names)
	if len(failed) > 0 {
		return fmt.Errorf("config: unknown draws %v", failed)
	}
	c.Draws = draws
	return nil
}

// envOverrides 可由环境变量覆盖的配置项
type envOverrides struct {
	Seed   *uint32 `env:"MTRAND_SEED"`
	Format string  `env:"MTRAND_OUTPUT_FORMAT"`
	File   string  `env:"MTRAND_OUTPUT_FILE"`
	URI    string  `env:"MTRAND_MONGO_URI"`
}

// ApplyEnv 使用环境变量覆盖配置
// 功能：读取MTRAND_SEED、MTRAND_OUTPUT_FORMAT、MTRAND_OUTPUT_FILE、MTRAND_MONGO_URI，非空时覆盖对应配置项
// 参数：c-待修改的配置
// 返回：环境变量格式错误时返回错误，c保持不变
func ApplyEnv(c *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	if o.Seed != nil {
		log.Infof("seed overridden by env: %d", *o.Seed)
		c.Generator.Seed = o.Seed
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
	if o.File != "" {
		c.Output.File = o.File
	}
	if o.URI != "" {
		c.Output.URI = o.URI
	}
	return nil
}
