package config

import (
	"go.uber.org/zap"
)

// Logger 全局日志
var Logger *zap.Logger

func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Logger = logger
}
