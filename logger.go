package climatch

import (
	"log/slog"
)

var logger = slog.Default()

// SetLogger replaces the package logger; pass nil to restore slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

//goland:noinspection GoUnusedExportedFunction
func GetLogger() *slog.Logger {
	return logger
}
