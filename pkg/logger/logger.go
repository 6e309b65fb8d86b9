package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger файловый логгер с уровнями
// Пишет одновременно в файл и в stdout
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает новый логгер
// Файл создается вместе с недостающими директориями, записи дописываются в конец
func New(filePath string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("logger: failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file: %w", err)
	}

	return &Logger{
		level: lvl,
		out:   log.New(io.MultiWriter(os.Stdout, file), "", log.LstdFlags),
		file:  file,
	}, nil
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug пишет сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info пишет сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn пишет сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error пишет сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal пишет сообщение уровня ERROR и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

func (l *Logger) write(lvl Level, tag string, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}

func parseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", level)
	}
}
