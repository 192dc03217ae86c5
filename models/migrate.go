package models

import (
	"chatbot-api/config"

	"go.uber.org/zap"
)

// Migrate 自动迁移
func Migrate() {
	err := config.DB.AutoMigrate(
		&User{},
		&Conversation{},
		&Message{},
		&DailyStat{},
	)
	if err != nil {
		config.Logger.Fatal("Failed to migrate database", zap.Error(err))
	}
}
