package task

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary 数值结果的统计摘要
type Summary struct {
	Count  int     `json:"count" yaml:"count" toml:"count" bson:"count"`
	Mean   float64 `json:"mean" yaml:"mean" toml:"mean" bson:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev" toml:"stddev" bson:"stddev"` // 样本标准差，少于2个样本时为0
	Min    float64 `json:"min" yaml:"min" toml:"min" bson:"min"`
	Max    float64 `json:"max" yaml:"max" toml:"max" bson:"max"`
}

// Summarize 计算统计摘要
// 参数：values-抽样结果，非数值元素被忽略
// 返回：没有数值元素时返回nil
func Summarize(values []any) *Summary {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if x, ok := toFloat(v); ok {
			xs = append(xs, x)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	s := &Summary{
		Count: len(xs),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}
	if len(xs) < 2 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	return s
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case uint32:
		return float64(x), true
	case int32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
