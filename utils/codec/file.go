package codec

import (
	"fmt"
	"os"

	"github.com/tsinghua-fib-lab/mtrand/mt19937"
)

// SaveFile 按扩展名对应的格式把v写入path
func SaveFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(f, v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}
	return nil
}

// LoadFile 按扩展名对应的格式从path读取v
func LoadFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("codec: read %s: %w", path, err)
	}
	return Unmarshal(f, data, v)
}

// SaveParams 保存算法常量
func SaveParams(path string, p mt19937.Params) error {
	return SaveFile(path, p)
}

// LoadParams 读取并校验算法常量
// 返回：文件缺失的字段保持默认值；校验失败时返回*mt19937.ConfigurationError
func LoadParams(path string) (mt19937.Params, error) {
	p := mt19937.DefaultParams()
	if err := LoadFile(path, &p); err != nil {
		return mt19937.Params{}, err
	}
	if err := p.Validate(); err != nil {
		return mt19937.Params{}, err
	}
	return p, nil
}

// SaveState 保存生成器快照
func SaveState(path string, mt *mt19937.MT19937) error {
	return SaveFile(path, mt.Snapshot())
}

// LoadState 读取快照并构造生成器
func LoadState(path string) (*mt19937.MT19937, error) {
	var s mt19937.State
	if err := LoadFile(path, &s); err != nil {
		return nil, err
	}
	return mt19937.FromState(s)
}
