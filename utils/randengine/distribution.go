package randengine

import (
	"math"
)

// poissonChunk 单次Knuth抽样允许的最大均值，exp(-500)仍是正规浮点数
const poissonChunk = 500.0

// Normal 正态分布抽样（Box–Muller）
// 功能：生成均值为mu、标准差为sigma的正态随机数
// 参数：mu-均值，sigma-标准差（非负）
// 返回：参数非法时返回参数错误
// 算法说明：
// 1. u1 = 1 - Float64() ∈ (0, 1]，保证ln(u1)有定义
// 2. u2 = Float64() ∈ [0, 1)
// 3. z = sqrt(-2 ln u1) * cos(2π u2)
// 4. 返回 mu + sigma * z
func (e *Engine) Normal(mu, sigma float64) (float64, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return 0, argError("Normal", "mu %v must be finite", mu)
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return 0, argError("Normal", "sigma %v must be finite and non-negative", sigma)
	}
	u1 := 1 - e.Float64()
	u2 := e.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mu + sigma*z, nil
}

// Exponential 指数分布抽样（逆CDF）
// 参数：rate-速率参数λ，必须大于0
// 返回：-ln(1-u)/λ，均值为1/λ
func (e *Engine) Exponential(rate float64) (float64, error) {
	if math.IsNaN(rate) || rate <= 0 {
		return 0, argError("Exponential", "rate %v must be positive", rate)
	}
	return -math.Log(1-e.Float64()) / rate, nil
}

// Poisson 泊松分布抽样（Knuth乘积法）
// 功能：生成均值为mean的泊松随机数
// 参数：mean-均值λ，必须非负且有限
// 算法说明：
// 1. 累乘均匀随机数，直到乘积小于exp(-λ)，返回累乘次数减一
// 2. λ大于poissonChunk时拆成若干份独立抽样后求和，避免exp(-λ)下溢为0导致死循环
// 说明：耗时与λ成正比
func (e *Engine) Poisson(mean float64) (uint64, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || mean < 0 {
		return 0, argError("Poisson", "mean %v must be finite and non-negative", mean)
	}
	var k uint64
	for mean > poissonChunk {
		k += e.knuthPoisson(poissonChunk)
		mean -= poissonChunk
	}
	return k + e.knuthPoisson(mean), nil
}

func (e *Engine) knuthPoisson(mean float64) uint64 {
	l := math.Exp(-mean)
	var k uint64
	p := 1.0
	for {
		k++
		p *= e.Float64()
		if p < l {
			break
		}
	}
	return k - 1
}
