package main

import (
	"chatbot-api/config"
	"chatbot-api/models"
	"chatbot-api/routes"
	"chatbot-api/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 加载 .env，不存在时用环境变量
	_ = godotenv.Load()

	config.InitLogger()
	defer config.Logger.Sync()

	config.LoadConfig()

	// 初始化数据库
	config.InitDB()
	// 自动迁移
	models.Migrate()

	// 初始化外部服务客户端
	services.InitAI()
	if err := services.InitCloudinary(); err != nil {
		config.Logger.Warn("Cloudinary init failed, avatar upload disabled", zap.Error(err))
	}

	// 注册路由
	r := routes.RegisterRoutes()

	// 启动服务
	if err := r.Run(config.App.ServerAddr); err != nil {
		config.Logger.Fatal("Server failed to start", zap.Error(err))
	}
}
