package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ============================================================================
// 日志级别定义
// ============================================================================

// LogLevel 日志级别
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// parseLogLevel 解析配置中的日志级别，无法识别时返回 LogInfo
func parseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarn
	case "error":
		return LogError
	default:
		return LogInfo
	}
}

// ============================================================================
// Logger 结构
// ============================================================================

// Logger 封装 zap logger，按天切换日志文件
type Logger struct {
	mu         sync.Mutex
	zap        *zap.Logger
	file       *os.File
	currentDay string // 当前日志文件日期 (YYYY-MM-DD)
	logDir     string
	level      LogLevel
}

var globalLogger *Logger

// InitLogger 初始化全局日志系统
func InitLogger(dir string, level LogLevel) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logger := &Logger{logDir: dir, level: level}
	if err := logger.rotateIfNeeded(time.Now()); err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// rotateIfNeeded 跨天时切换到新的日志文件
func (l *Logger) rotateIfNeeded(now time.Time) error {
	today := now.Format("2006-01-02")

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentDay == today && l.zap != nil {
		return nil
	}

	logPath := filepath.Join(l.logDir, fmt.Sprintf("stocker-master-%s.log", today))
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// 关闭旧文件前先刷新
	if l.zap != nil {
		_ = l.zap.Sync()
	}
	if l.file != nil {
		_ = l.file.Close()
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: bracketLevelEncoder,
		EncodeTime:  bracketTimeEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(file),
		levelToZapLevel(l.level),
	)

	l.zap = zap.New(core)
	l.file = file
	l.currentDay = today
	return nil
}

// bracketTimeEncoder 时间格式: [2006-01-02 15:04:05]
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

// bracketLevelEncoder 级别格式: [DEBUG]
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

func levelToZapLevel(l LogLevel) zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Log 统一日志接口，格式 [pathKey][message]，pathKey 为空时只输出 [message]
func (l *Logger) Log(level LogLevel, pathKey string, message string) {
	if err := l.rotateIfNeeded(time.Now()); err != nil {
		return
	}

	formatted := "[" + message + "]"
	if pathKey != "" {
		formatted = "[" + pathKey + "]" + formatted
	}

	// 写入与 Sync 共用同一把锁，Sync 之后 zap 为 nil 时直接丢弃
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zap == nil {
		return
	}

	switch level {
	case LogDebug:
		l.zap.Debug(formatted)
	case LogInfo:
		l.zap.Info(formatted)
	case LogWarn:
		l.zap.Warn(formatted)
	case LogError:
		l.zap.Error(formatted)
	}
}

// Sync 刷新缓冲区并关闭文件（应用退出时调用）
func (l *Logger) Sync() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zap != nil {
		_ = l.zap.Sync()
	}
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
		l.zap = nil
		l.currentDay = ""
	}
}
