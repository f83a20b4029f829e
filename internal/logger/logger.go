package logger

import "go.uber.org/zap"

// New builds the application logger. Callers are expected to defer Sync.
func New() *zap.SugaredLogger {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log.Sugar()
}
