// 抽样结果输出，支持编码到文件或标准输出，以及写入MongoDB
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/mtrand/task"
	"github.com/tsinghua-fib-lab/mtrand/utils/codec"
	"github.com/tsinghua-fib-lab/mtrand/utils/config"
)

var log = logrus.WithField("module", "output")

// Writer 结果输出接口
type Writer interface {
	Write(ctx context.Context, results []task.Result) error
	Close() error
}

// Document 编码输出的文档结构
type Document struct {
	Seed    *uint32       `json:"seed,omitempty" yaml:"seed,omitempty" toml:"seed,omitempty"` // 播种使用的种子，从快照恢复时为空
	Source  string        `json:"source" yaml:"source" toml:"source"`                         // 生成器状态来源
	Results []task.Result `json:"results" yaml:"results" toml:"results"`
}

// Encoder 按指定格式把结果编码写入io.Writer
type Encoder struct {
	w      io.Writer
	closer io.Closer
	format codec.Format
	header Document
}

// NewEncoder 创建编码输出
// 参数：w-输出目标，format-编码格式，header-文档中除结果以外的字段
func NewEncoder(w io.Writer, format codec.Format, header Document) *Encoder {
	return &Encoder{w: w, format: format, header: header}
}

// NewFileEncoder 创建写文件的编码输出，path为空时写到标准输出
func NewFileEncoder(path string, format codec.Format, header Document) (*Encoder, error) {
	if path == "" {
		return NewEncoder(os.Stdout, format, header), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	e := NewEncoder(f, format, header)
	e.closer = f
	return e, nil
}

func (e *Encoder) Write(_ context.Context, results []task.Result) error {
	doc := e.header
	doc.Results = results
	data, err := codec.Marshal(e.format, doc)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (e *Encoder) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// Multi 把同一批结果依次写入多个输出，遇到第一个错误即返回
type Multi []Writer

func (m Multi) Write(ctx context.Context, results []task.Result) error {
	for _, w := range m {
		if err := w.Write(ctx, results); err != nil {
			return err
		}
	}
	return nil
}

// Close 关闭全部输出，返回第一个错误
func (m Multi) Close() error {
	var first error
	for _, w := range m {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Emit 写出结果并关闭输出
// 功能：无论写入是否成功都会调用Close，写入与关闭的错误合并返回
func Emit(ctx context.Context, w Writer, results []task.Result) error {
	err := w.Write(ctx, results)
	return errors.Join(err, w.Close())
}

// New 根据配置创建输出
// 功能：总是包含编码输出；配置了MongoDB连接字符串时追加MongoDB输出
// 参数：ctx-连接MongoDB使用的上下文，rc-运行时配置，header-文档头
func New(ctx context.Context, rc *config.RuntimeConfig, header Document) (Writer, error) {
	o := rc.All.Output
	enc, err := NewFileEncoder(o.File, rc.Format, header)
	if err != nil {
		return nil, err
	}
	if o.URI == "" {
		return enc, nil
	}
	m, err := NewMongo(ctx, o.URI, o.GetDb(), o.GetColl())
	if err != nil {
		enc.Close()
		return nil, err
	}
	run := time.Now().UTC().Format(time.RFC3339Nano)
	log.Infof("results will also be written to mongo %s.%s (run %s)", o.GetDb(), o.GetColl(), run)
	return Multi{enc, m.WithRun(run)}, nil
}
