package mt19937

// State 生成器状态快照
// 功能：以普通结构化数据暴露状态数组与游标，供外部持久化
// 说明：本包不实现任何序列化逻辑，编码由utils/codec完成
type State struct {
	Words []uint32 `yaml:"words" json:"words" toml:"words"` // 状态数组，长度必须为N
	Index int      `yaml:"index" json:"index" toml:"index"` // 游标
}

// Snapshot 导出当前状态
func (mt *MT19937) Snapshot() State {
	words := make([]uint32, N)
	copy(words, mt.state[:])
	return State{Words: words, Index: mt.index}
}

// Restore 从快照恢复状态
// 功能：校验快照后整体覆盖状态数组与游标
// 参数：s-快照
// 返回：快照长度或游标非法时返回*ConfigurationError，生成器保持不变
func (mt *MT19937) Restore(s State) error {
	if len(s.Words) != N {
		return configError("words", "must contain %d words, got %d", N, len(s.Words))
	}
	if s.Index < 0 || s.Index > unseeded {
		return configError("index", "must be in [0, %d], got %d", unseeded, s.Index)
	}
	copy(mt.state[:], s.Words)
	mt.index = s.Index
	return nil
}

// FromState 由快照直接构造生成器
func FromState(s State) (*MT19937, error) {
	mt := &MT19937{}
	if err := mt.Restore(s); err != nil {
		return nil, err
	}
	return mt, nil
}
