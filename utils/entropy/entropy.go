// 熵源，为MT19937的非确定性播种提供种子
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/tsinghua-fib-lab/mtrand/mt19937"
)

var (
	_ mt19937.EntropySource = Crypto{}
	_ mt19937.EntropySource = Clock{}
	_ mt19937.EntropySource = Fixed(0)
	_ mt19937.EntropySource = Func(nil)
)

// Crypto 从操作系统密码学随机源读取种子
// 说明：Reader为空时使用crypto/rand.Reader
type Crypto struct {
	Reader io.Reader
}

// Uint32 读取4个字节并按小端序解释
func (c Crypto) Uint32() (uint32, error) {
	r := c.Reader
	if r == nil {
		r = crand.Reader
	}
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// Clock 以当前时间作为种子
// 说明：UnixNano的高低32位异或折叠；Now为空时使用time.Now
type Clock struct {
	Now func() time.Time
}

func (c Clock) Uint32() (uint32, error) {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	ns := uint64(now().UnixNano())
	return uint32(ns>>32) ^ uint32(ns), nil
}

// Fixed 固定种子，每次返回同一个值
type Fixed uint32

func (f Fixed) Uint32() (uint32, error) {
	return uint32(f), nil
}

// Func 把函数适配为熵源
type Func func() (uint32, error)

func (f Func) Uint32() (uint32, error) {
	if f == nil {
		return 0, fmt.Errorf("read random seed: nil entropy func")
	}
	return f()
}

// ByName 根据配置名称返回熵源
// 参数：name-crypto或clock，空字符串视为crypto
func ByName(name string) (mt19937.EntropySource, error) {
	switch name {
	case "", "crypto":
		return Crypto{}, nil
	case "clock":
		return Clock{}, nil
	default:
		return nil, fmt.Errorf("unknown entropy source %q", name)
	}
}
