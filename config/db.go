package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB 全局数据库连接
var DB *gorm.DB

// InitDB 初始化数据库连接
func InitDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		App.DBUser, App.DBPassword, App.DBHost, App.DBPort, App.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		Logger.Fatal("Failed to connect database", zap.Error(err))
	}

	DB = db
	Logger.Info("Database connected", zap.String("host", App.DBHost), zap.String("db", App.DBName))
}
