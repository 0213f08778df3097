package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
	"github.com/tsinghua-fib-lab/mtrand/task"
	"github.com/tsinghua-fib-lab/mtrand/task/output"
	"github.com/tsinghua-fib-lab/mtrand/utils/config"
)

var (
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 覆盖配置中的种子，负数表示不覆盖
	seed = flag.Int64("seed", -1, "override generator seed (negative means use config)")
	// 覆盖配置中的输出格式
	format = flag.String("format", "", "override output format (json yaml toml)")
	// 只执行指定名称的抽样任务，逗号分隔
	only = flag.String("draws", "", "comma separated draw names to run (empty means all)")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "mtrand")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// 日志写到标准错误，标准输出留给结果
	logrus.SetOutput(os.Stderr)
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	} else {
		log.Panic("config file or config data must be specified")
	}
	c, err := config.Load(file)
	if err != nil {
		log.Panicf("config file load err: %v", err)
	}
	if err := config.ApplyEnv(&c); err != nil {
		log.Panicf("config env err: %v", err)
	}
	if *seed >= 0 {
		if *seed > 0xffffffff {
			log.Panicf("seed %d does not fit in 32 bits", *seed)
		}
		s := uint32(*seed)
		c.Generator.Seed = &s
	}
	if *format != "" {
		c.Output.Format = *format
	}
	if *only != "" {
		if err := c.Select(strings.Split(*only, ",")); err != nil {
			log.Panicf("%v", err)
		}
	}
	log.Debugf("%+v", c)

	if err := run(context.Background(), c); err != nil {
		log.Fatalf("%v", err)
	}
}

// run 执行全部抽样任务并输出结果
// 说明：输出在返回前总是被关闭，写入失败时也不例外
func run(ctx context.Context, c config.Config) error {
	t, err := task.NewContext(c, nil)
	if err != nil {
		return fmt.Errorf("task init err: %w", err)
	}
	results, err := t.Run()
	if err != nil {
		return fmt.Errorf("run err: %w", err)
	}

	header := output.Document{Source: t.Source()}
	if s, ok := t.Seed(); ok {
		header.Seed = &s
	}
	w, err := output.New(ctx, t.RuntimeConfig(), header)
	if err != nil {
		return fmt.Errorf("output init err: %w", err)
	}
	if err := output.Emit(ctx, w, results); err != nil {
		return fmt.Errorf("output err: %w", err)
	}
	return t.SaveSnapshot()
}
