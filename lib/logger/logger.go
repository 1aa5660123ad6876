package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

/**
 * @Author: wanglei
 * @File: logger
 * @Version: 1.0.0
 * @Description: 基于logrus的日志，按天切割日志文件
 * @Date: 2023/07/05 16:02
 */

// Settings 日志配置
type Settings struct {
	// 日志目录，为空时只输出到stdout
	Dir    string
	Level  string
	Stdout bool
	MaxAge time.Duration
}

const (
	timestampFormat = "2006-01-02 15:04:05"
	defaultMaxAge   = 7 * 24 * time.Hour
)

var logger = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: timestampFormat,
	})
	l.SetOutput(out)
	return l
}

// Setup 根据settings重新设置日志输出与级别
func Setup(settings *Settings) error {
	level := logrus.InfoLevel
	if settings.Level != "" {
		lv, err := logrus.ParseLevel(settings.Level)
		if err != nil {
			return errors.Wrapf(err, "parse log level %q", settings.Level)
		}
		level = lv
	}

	var writers []io.Writer
	if settings.Dir != "" {
		if err := os.MkdirAll(settings.Dir, 0755); err != nil {
			return errors.Wrap(err, "create log dir")
		}
		maxAge := settings.MaxAge
		if maxAge <= 0 {
			maxAge = defaultMaxAge
		}
		writer, err := rotatelogs.New(
			filepath.Join(settings.Dir, "%Y%m%d.log"),
			// 每24小时切割一次
			rotatelogs.WithRotationTime(24*time.Hour),
			// WithMaxAge和WithRotationCount只能设置一个
			rotatelogs.WithMaxAge(maxAge),
		)
		if err != nil {
			return errors.Wrap(err, "create rotate logs")
		}
		writers = append(writers, writer)
	}
	if settings.Stdout || len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	logger.SetOutput(io.MultiWriter(writers...))
	logger.SetLevel(level)
	return nil
}

// SetOutput 测试时替换输出
func SetOutput(out io.Writer) {
	logger.SetOutput(out)
}

func entry() *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"file": fileLine(),
	})
}

func Debug(args ...interface{}) {
	entry().Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	entry().Debugf(format, args...)
}

func Info(args ...interface{}) {
	entry().Info(args...)
}

func Infof(format string, args ...interface{}) {
	entry().Infof(format, args...)
}

func Warn(args ...interface{}) {
	entry().Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	entry().Warnf(format, args...)
}

func Error(args ...interface{}) {
	entry().Error(args...)
}

func Errorf(format string, args ...interface{}) {
	entry().Errorf(format, args...)
}

func Fatal(args ...interface{}) {
	entry().Fatal(args...)
}

func Fatalf(format string, args ...interface{}) {
	entry().Fatalf(format, args...)
}

// fileLine 返回调用日志函数的位置，相对于工作目录
func fileLine() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "file path not found"
	}
	abs, _ := filepath.Abs(file)
	root, _ := os.Getwd()
	path := strings.Replace(strings.Replace(abs, root, "", 1), "\\", "/", -1)
	return fmt.Sprintf("%s:%d", path, line)
}
