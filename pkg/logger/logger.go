// Package logger предоставляет тонкую обёртку над slog с printf-подобным API.
package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger — интерфейс логгера приложения.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

// SlogLogger реализует Logger поверх стандартного slog.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создает логгер с текстовым выводом в stderr.
func NewSlogLogger() *SlogLogger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return &SlogLogger{log: slog.New(handler)}
}

func (l *SlogLogger) Infof(format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Warnf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

// Errorf логирует ошибку с сообщением. err может быть nil.
func (l *SlogLogger) Errorf(err error, format string, args ...any) {
	if err != nil {
		l.log.Error(fmt.Sprintf(format, args...), slog.String("error", err.Error()))
		return
	}

	l.log.Error(fmt.Sprintf(format, args...))
}
