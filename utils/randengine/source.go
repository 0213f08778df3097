package randengine

import (
	"golang.org/x/exp/rand"
)

// Source 把引擎适配为 golang.org/x/exp/rand.Source
// 说明：与引擎共享同一个MT19937状态，通过它抽取的随机数同样推进引擎游标
type Source struct {
	e *Engine
}

var _ rand.Source = Source{}

// Uint64 两次原始抽取拼成64位
func (s Source) Uint64() uint64 {
	return s.e.Uint64()
}

// Seed 以seed的低32位重新播种
func (s Source) Seed(seed uint64) {
	s.e.Seed(uint32(seed))
}

// Source 返回共享状态的rand.Source
func (e *Engine) Source() Source {
	return Source{e: e}
}

// Rand 返回由本引擎驱动的 *rand.Rand，便于使用其NormFloat64、ExpFloat64、Perm等方法
func (e *Engine) Rand() *rand.Rand {
	return rand.New(e.Source())
}
