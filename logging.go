package timetable

import "go.uber.org/zap"

// nopLogger returns logger unchanged, or a new no-op logger when logger is
// nil, so every solver constructor can accept a nil *zap.Logger.
func nopLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
