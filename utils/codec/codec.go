// 编解码工具，支持JSON、YAML与TOML三种格式，用于参数、状态快照与抽样结果的持久化
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Format 编码格式
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ErrUnknownFormat 不支持的编码格式
var ErrUnknownFormat = errors.New("codec: unknown format")

// ParseFormat 解析格式名称，大小写不敏感，yml视为yaml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatOf 根据文件扩展名推断格式
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Ext 格式对应的文件扩展名（含点）
func (f Format) Ext() string {
	return "." + string(f)
}

// Marshal 按指定格式编码v
// 说明：JSON输出带两个空格缩进并以换行结尾
func Marshal(f Format, v any) ([]byte, error) {
	switch f {
	case JSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("codec: marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case YAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("codec: marshal yaml: %w", err)
		}
		return data, nil
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, fmt.Errorf("codec: marshal toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Unmarshal 按指定格式解码data到v
// 说明：YAML使用严格模式，未知字段视为错误
func Unmarshal(f Format, data []byte, v any) error {
	switch f {
	case JSON:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("codec: unmarshal json: %w", err)
		}
	case YAML:
		if err := yaml.UnmarshalStrict(data, v); err != nil {
			return fmt.Errorf("codec: unmarshal yaml: %w", err)
		}
	case TOML:
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("codec: unmarshal toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return nil
}
