package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"saju_food_chat/config"
)

// Logger 전역 로거
var Logger *slog.Logger

// Init 설정값으로 slog 로깅 시스템 초기화
func Init(cfg *config.Config) error {
	level := cfg.Log.Level
	format := cfg.Log.Format
	output := cfg.Log.Output
	filePath := cfg.Log.FilePath

	// 로그 디렉터리 생성
	if filePath != "" {
		logDir := filepath.Dir(filePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
	}

	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer io.Writer
	switch strings.ToLower(output) {
	case "file":
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writer = file
	case "both":
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writer = io.MultiWriter(os.Stdout, file)
	default:
		writer = os.Stdout
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return nil
}

// Debug 디버그 레벨 로그
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info 정보 레벨 로그
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn 경고 레벨 로그
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error 오류 레벨 로그
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
