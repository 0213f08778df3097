package randengine

import (
	"math"
)

const alphaNumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// uint32n 返回[0, n)上无偏的均匀随机数，n必须大于0
// 算法说明：
// 1. n为2的幂时直接取低位
// 2. 否则拒绝落在 [0, 2^32 mod n) 的原始值后取模，消除取模偏差
func (e *Engine) uint32n(n uint32) uint32 {
	if n&(n-1) == 0 {
		return e.Uint32() & (n - 1)
	}
	threshold := -n % n
	for {
		v := e.Uint32()
		if v >= threshold {
			return v % n
		}
	}
}

// uint64n 返回[0, n)上无偏的均匀随机数，n必须大于0
func (e *Engine) uint64n(n uint64) uint64 {
	switch {
	case n <= math.MaxUint32:
		return uint64(e.uint32n(uint32(n)))
	case n == 1<<32:
		return uint64(e.Uint32())
	}
	if n&(n-1) == 0 {
		return e.Uint64() & (n - 1)
	}
	threshold := -n % n
	for {
		v := e.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}

// Bool 以指定概率返回true
// 参数：probability-返回true的概率，必须在[0, 1]内
// 返回：概率非法时返回参数错误
func (e *Engine) Bool(probability float64) (bool, error) {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return false, argError("Bool", "probability %v must be in [0, 1]", probability)
	}
	return e.Float64() < probability, nil
}

// Int 生成闭区间[min, max]上的均匀随机整数
func (e *Engine) Int(min, max int32) (int32, error) {
	if min > max {
		return 0, argError("Int", "min %d must not exceed max %d", min, max)
	}
	span := uint64(int64(max)-int64(min)) + 1
	return int32(int64(min) + int64(e.uint64n(span))), nil
}

// Uint 生成闭区间[min, max]上的均匀随机无符号整数
func (e *Engine) Uint(min, max uint32) (uint32, error) {
	if min > max {
		return 0, argError("Uint", "min %d must not exceed max %d", min, max)
	}
	span := uint64(max-min) + 1
	return min + uint32(e.uint64n(span)), nil
}

// RangedUint 生成半开区间[min, max)上的均匀随机无符号整数
func (e *Engine) RangedUint(min, max uint32) (uint32, error) {
	if max <= min {
		return 0, argError("RangedUint", "max %d must be greater than min %d", max, min)
	}
	return min + e.uint32n(max-min), nil
}

// Intn 生成[0, n)上的均匀随机整数
func (e *Engine) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, argError("Intn", "n %d must be positive", n)
	}
	return int(e.uint64n(uint64(n))), nil
}

// intn 内部使用，调用方保证n>0
func (e *Engine) intn(n int) int {
	return int(e.uint64n(uint64(n)))
}

// Float32 生成[0, 1)上的单精度浮点数，取原始值的高24位
func (e *Engine) Float32() float32 {
	return float32(e.Uint32()>>8) / (1 << 24)
}

// Float64 生成[0, 1)上的双精度浮点数
// 说明：两次抽取拼出53位尾数（genrand_res53）
func (e *Engine) Float64() float64 {
	a := e.Uint32() >> 5
	b := e.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uint64 两次抽取拼成64位随机数，先高后低
func (e *Engine) Uint64() uint64 {
	hi := uint64(e.Uint32())
	lo := uint64(e.Uint32())
	return hi<<32 | lo
}

func (e *Engine) Int64() int64 {
	return int64(e.Uint64())
}

// Bytes 生成n个随机字节，每个字节取一次原始抽取的最低8位
func (e *Engine) Bytes(n int) []byte {
	if n < 0 {
		log.Panicf("randengine: Bytes: negative length %d", n)
	}
	res := make([]byte, n)
	for i := range res {
		res[i] = byte(e.Uint32())
	}
	return res
}

// Fill 用原始32位随机数填满buf
func (e *Engine) Fill(buf []uint32) {
	for i := range buf {
		buf[i] = e.Uint32()
	}
}

// Char 生成'a'到'z'之间的随机小写字母
func (e *Engine) Char() rune {
	return 'a' + rune(e.uint32n(26))
}

// AlphaNumeric 生成长度为n的随机字符串，字母表为0-9a-zA-Z共62个字符
func (e *Engine) AlphaNumeric(n int) string {
	if n < 0 {
		log.Panicf("randengine: AlphaNumeric: negative length %d", n)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphaNumeric[e.uint32n(uint32(len(alphaNumeric)))]
	}
	return string(b)
}

// Pseudo 将连续32次原始抽取异或折叠为一个值
func (e *Engine) Pseudo() uint32 {
	res := e.Uint32()
	for range 31 {
		res ^= e.Uint32()
	}
	return res
}
