package task

import (
	"fmt"
	"sync/atomic"

	"github.com/tsinghua-fib-lab/mtrand/mt19937"
	"github.com/tsinghua-fib-lab/mtrand/utils/codec"
	"github.com/tsinghua-fib-lab/mtrand/utils/config"
	"github.com/tsinghua-fib-lab/mtrand/utils/entropy"
	"github.com/tsinghua-fib-lab/mtrand/utils/randengine"
)

// 生成器状态来源
const (
	SourceRestore = "restore" // 从快照恢复
	SourceSeed    = "seed"    // 配置中的显式种子
	SourceEntropy = "entropy" // 从熵源获取种子
)

// Context 抽样任务上下文
// 功能：包含一次抽样任务的配置、生成器和随机数引擎
// 说明：生成器由Context独占，Run按配置顺序依次消耗同一条随机数序列
type Context struct {
	// 运行时配置
	runtimeConfig *config.RuntimeConfig

	// 状态引擎
	mt *mt19937.MT19937
	// 随机数引擎，与mt共享状态
	engine *randengine.Engine

	// 播种使用的种子，从快照恢复时无意义
	seed uint32
	// 生成器状态来源
	source string

	// 是否已执行
	ran atomic.Bool
}

// NewContext 创建新的抽样任务上下文
// 功能：校验配置并构造生成器
// 参数：
//   - c: 配置对象
//   - src: 熵源，为空时按配置中的entropy字段选择
//
// 返回：初始化完成的Context实例；配置非法、快照无法读取或熵源失败时返回错误
// 算法说明：
// 1. 填充默认值并校验配置
// 2. 配置了restore时从快照恢复生成器
// 3. 否则使用显式种子，没有显式种子时从熵源读取
// 4. 种子加上rand.seed_offset偏移量（按uint32回绕）
// 5. 按seed_mode选择标准播种或饱和播种
// 6. 用随机数引擎包装生成器
func NewContext(c config.Config, src mt19937.EntropySource) (*Context, error) {
	rc, err := config.NewRuntimeConfig(c)
	if err != nil {
		return nil, err
	}
	ctx := &Context{runtimeConfig: rc}
	g := rc.G

	if g.Params != nil && !g.Params.IsCanonical() {
		log.Warnf("generator.params %v differ from MT19937, the engine keeps the canonical constants", *g.Params)
	}

	switch {
	case g.Restore != "":
		mt, err := codec.LoadState(g.Restore)
		if err != nil {
			return nil, fmt.Errorf("task: restore %s: %w", g.Restore, err)
		}
		ctx.mt = mt
		ctx.source = SourceRestore
		log.Infof("generator restored from %s at index %d", g.Restore, mt.Index())
	default:
		if g.Seed != nil {
			ctx.seed = *g.Seed
			ctx.source = SourceSeed
		} else {
			if src == nil {
				if src, err = entropy.ByName(g.Entropy); err != nil {
					return nil, err
				}
			}
			if ctx.seed, err = src.Uint32(); err != nil {
				return nil, fmt.Errorf("task: %w", err)
			}
			ctx.source = SourceEntropy
		}
		if offset := randengine.SeedOffset(); offset != 0 {
			log.Infof("seed %d shifted by rand.seed_offset %d", ctx.seed, offset)
			ctx.seed += offset
		}
		ctx.mt = mt19937.NewUnseeded()
		if g.SeedMode == config.SeedModeSaturating {
			ctx.mt.SeedSaturating(ctx.seed)
		} else {
			ctx.mt.Seed(ctx.seed)
		}
		log.Infof("generator seeded with %d (%s, %s)", ctx.seed, ctx.source, g.SeedMode)
	}
	ctx.engine = randengine.Wrap(ctx.mt)
	return ctx, nil
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Engine() *randengine.Engine {
	return ctx.engine
}

// Seed 播种使用的种子，第二个返回值表示生成器是否由种子构造
func (ctx *Context) Seed() (uint32, bool) {
	return ctx.seed, ctx.source != SourceRestore
}

// Source 生成器状态来源：restore、seed或entropy
func (ctx *Context) Source() string {
	return ctx.source
}

// Snapshot 导出生成器当前状态
func (ctx *Context) Snapshot() mt19937.State {
	return ctx.mt.Snapshot()
}

// SaveSnapshot 把当前状态写入配置的快照文件，未配置时不做任何事
func (ctx *Context) SaveSnapshot() error {
	path := ctx.runtimeConfig.All.Output.Snapshot
	if path == "" {
		return nil
	}
	if err := codec.SaveState(path, ctx.mt); err != nil {
		return fmt.Errorf("task: save snapshot: %w", err)
	}
	log.Infof("snapshot saved to %s at index %d", path, ctx.mt.Index())
	return nil
}
