package task

import (
	"encoding/hex"
	"flag"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/mtrand/utils/config"
	"github.com/tsinghua-fib-lab/mtrand/utils/randengine"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100000, "心跳日志间隔抽样次数")
)

// Result 单项抽样任务的结果
type Result struct {
	Name    string      `json:"name" yaml:"name" toml:"name" bson:"name"`
	Kind    config.Kind `json:"kind" yaml:"kind" toml:"kind" bson:"kind"`
	Values  []any       `json:"values" yaml:"values" toml:"values" bson:"values"`
	Summary *Summary    `json:"summary,omitempty" yaml:"summary,omitempty" toml:"summary,omitempty" bson:"summary,omitempty"`
}

// Run 按配置顺序执行全部抽样任务
// 功能：依次执行每个抽样任务count次，收集结果并按需计算统计摘要
// 返回：全部结果；任一任务参数非法时立即返回错误，已消耗的随机数不回滚
// 说明：多次调用Run会从上次结束的位置继续消耗同一条序列
func (ctx *Context) Run() ([]Result, error) {
	if ctx.ran.Swap(true) {
		log.Infof("run again from index %d", ctx.mt.Index())
	}
	draws := ctx.runtimeConfig.All.Draws
	results := make([]Result, 0, len(draws))
	total := 0
	for _, d := range draws {
		values := make([]any, 0, d.Count)
		for range d.Count {
			v, err := ctx.draw(d)
			if err != nil {
				return nil, fmt.Errorf("task: draw %q: %w", d.Name, err)
			}
			values = append(values, v)
			total++
			if *heartBeatInterval > 0 && total%*heartBeatInterval == 0 {
				log.Infof("DRAWS: %d (index %d)", total, ctx.mt.Index())
			}
		}
		r := Result{Name: d.Name, Kind: d.Kind, Values: values}
		if d.Summary {
			r.Summary = Summarize(values)
		}
		log.Debugf("draw %s (%s) x%d done", d.Name, d.Kind, d.Count)
		results = append(results, r)
	}
	log.Infof("%d draws in %d tasks", total, len(results))
	return results, nil
}

// draw 执行一次抽样
// 说明：字节串以十六进制字符串输出，集合类结果为[]string
func (ctx *Context) draw(d config.Draw) (any, error) {
	e := ctx.engine
	switch d.Kind {
	case config.KindRaw:
		return e.Uint32(), nil
	case config.KindPseudo:
		return e.Pseudo(), nil
	case config.KindBool:
		return e.Bool(d.P)
	case config.KindInt:
		return e.Int(int32(d.Min), int32(d.Max))
	case config.KindUint:
		return e.Uint(uint32(d.Min), uint32(d.Max))
	case config.KindRangedUint:
		return e.RangedUint(uint32(d.Min), uint32(d.Max))
	case config.KindIntn:
		return e.Intn(int(d.Max))
	case config.KindFloat32:
		return e.Float32(), nil
	case config.KindFloat64:
		return e.Float64(), nil
	case config.KindInt64:
		return e.Int64(), nil
	case config.KindUint64:
		return e.Uint64(), nil
	case config.KindBytes:
		return hex.EncodeToString(e.Bytes(d.Len)), nil
	case config.KindChar:
		return string(e.Char()), nil
	case config.KindString:
		return e.AlphaNumeric(d.Len), nil
	case config.KindChoose:
		v, ok := randengine.Choose(e, d.Values)
		if !ok {
			return nil, fmt.Errorf("%w: values must not be empty", randengine.ErrInvalidArgument)
		}
		return v, nil
	case config.KindShuffle:
		values := slices.Clone(d.Values)
		randengine.Shuffle(e, values)
		return values, nil
	case config.KindSample:
		return randengine.Sample(e, d.Values, d.K)
	case config.KindSampleWithReplacement:
		return randengine.SampleWithReplacement(e, d.Values, d.K)
	case config.KindWeighted:
		weights := lo.Map(d.Weights, func(w float64, _ int) uint32 { return uint32(w) })
		return randengine.WeightedChoice(e, d.Values, weights)
	case config.KindWeightedSample:
		return randengine.WeightedSample(e, d.Values, d.Weights, d.K)
	case config.KindNormal:
		return e.Normal(d.Mu, d.Sigma)
	case config.KindExponential:
		return e.Exponential(d.Rate)
	case config.KindPoisson:
		return e.Poisson(d.Mean)
	default:
		return nil, fmt.Errorf("unknown kind %q", d.Kind)
	}
}
