package randengine

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "randengine")

// ErrInvalidArgument 参数错误的哨兵值，可用errors.Is判断
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError 参数错误
// 功能：描述调用方传入的参数违反了哪个操作的前置条件
// 说明：总是在消耗任何随机数之前返回，引擎状态保持不变
type ArgumentError struct {
	Op  string // 操作名
	Msg string // 错误原因
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("randengine: %s: %s", e.Op, e.Msg)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func argError(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
