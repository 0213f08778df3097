package mt19937

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration 所有配置错误的哨兵值，可用errors.Is判断
var ErrInvalidConfiguration = errors.New("invalid mt19937 configuration")

// ConfigurationError 配置错误
// 功能：描述算法常量或快照不满足约束的具体字段与原因
// 说明：只在构造或修改配置时产生，生成随机数的过程不会返回此错误
type ConfigurationError struct {
	Field string // 出错字段
	Msg   string // 错误原因
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mt19937: %s %s", e.Field, e.Msg)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
