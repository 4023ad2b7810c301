package glog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func StdError(logContent string) {
	logContent = strings.TrimSpace(logContent)
	os.Stderr.WriteString(fmt.Sprintf("[%s]%s\n", time.Now().Format("2006-01-02 15:04:05"), logContent))
}

func StdInfo(logContent string) {
	logContent = strings.TrimSpace(logContent)
	os.Stdout.WriteString(fmt.Sprintf("[%s]%s\n", time.Now().Format("2006-01-02 15:04:05"), logContent))
}

type Options struct {
	// Dir holds the rotated log files. Empty means <app dir>/log.
	Dir string
	// Release drops the console copies and writes the file only.
	Release bool
	Debug   bool
	MaxAge  time.Duration
}

var (
	logger   *zap.Logger
	loggerMu sync.Mutex
)

// Init builds the process logger. Without a call to Init the first log
// line initialises it from the environment (glog_run_mode=release).
func Init(opts Options) error {

	xLogger, xErr := newLogger(opts)
	if xErr != nil {
		return xErr
	}

	SetLogger(xLogger)

	return nil
}

// SetLogger replaces the process logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	logger = l
	if logger != nil {
		zap.ReplaceGlobals(logger)
	}
}

// Sync flushes buffered entries.
func Sync() {
	if l := current(); l != nil {
		l.Sync()
	}
}

func current() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger != nil {
		return logger
	}

	opts := Options{Release: strings.EqualFold(os.Getenv("glog_run_mode"), "release")}

	xLogger, xErr := newLogger(opts)
	if xErr != nil {
		StdError(xErr.Error())
		xLogger = zap.NewNop()
	}

	logger = xLogger
	zap.ReplaceGlobals(logger)

	return logger
}

func newLogger(opts Options) (*zap.Logger, error) {

	logFileDir := opts.Dir
	if len(logFileDir) < 1 {
		appFilePath, appErr := filepath.Abs(os.Args[0])
		if appErr != nil {
			return nil, appErr
		}
		logFileDir = filepath.Join(filepath.Dir(appFilePath), "log")
	}

	if dirErr := os.MkdirAll(logFileDir, 0755); dirErr != nil {
		return nil, fmt.Errorf("create log dir [%s] error:[%v]", logFileDir, dirErr.Error())
	}

	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}

	logFileFormat := filepath.Join(logFileDir, "viewer_%Y%m%d.log")

	logHandle, logErr := rotatelogs.New(logFileFormat,
		rotatelogs.WithClock(rotatelogs.Local),
		rotatelogs.WithMaxAge(maxAge))
	if logErr != nil {
		return nil, fmt.Errorf("rotatelogs.New error:[%v]", logErr.Error())
	}

	logConfig := zap.NewProductionEncoderConfig()
	logConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConfig.EncodeLevel = func(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString("[" + level.CapitalString() + "]")
	}

	logEncoder := zapcore.NewConsoleEncoder(logConfig)

	minLevel := zapcore.InfoLevel
	if opts.Debug {
		minLevel = zapcore.DebugLevel
	}

	logOutLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel && lvl < zapcore.WarnLevel
	})

	logErrLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.WarnLevel
	})

	logFileLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel
	})

	var logCore zapcore.Core

	if opts.Release {
		logCore = zapcore.NewCore(logEncoder, zapcore.AddSync(logHandle), logFileLevel)
	} else {
		logCore = zapcore.NewTee(
			zapcore.NewCore(logEncoder, zapcore.AddSync(logHandle), logFileLevel),
			zapcore.NewCore(logEncoder, zapcore.AddSync(os.Stdout), logOutLevel),
			zapcore.NewCore(logEncoder, zapcore.AddSync(os.Stderr), logErrLevel),
		)
	}

	return zap.New(logCore,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	), nil
}

func Debug(args ...interface{}) {
	current().Debug(fmt.Sprint(args...))
}

func DebugF(format string, args ...interface{}) {
	current().Debug(fmt.Sprintf(format, args...))
}

func Info(args ...interface{}) {
	current().Info(fmt.Sprint(args...))
}

func InfoF(format string, args ...interface{}) {
	current().Info(fmt.Sprintf(format, args...))
}

func Warn(args ...interface{}) {
	current().Warn(fmt.Sprint(args...))
}

func WarnF(format string, args ...interface{}) {
	current().Warn(fmt.Sprintf(format, args...))
}

func Error(args ...interface{}) {
	current().Error(fmt.Sprint(args...))
}

func ErrorF(format string, args ...interface{}) {
	current().Error(fmt.Sprintf(format, args...))
}
