package config

import (
	"github.com/spf13/viper"
)

// App 全局配置
var App *Config

type Config struct {
	ServerAddr string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret      string
	JWTExpireHours int

	AIBaseURL        string
	AITimeoutSeconds int

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	AvatarFolder        string
}

// LoadConfig 从环境变量读取配置（main 先用 godotenv 加载 .env）
func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", ":8082")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_NAME", "chatbot")
	v.SetDefault("JWT_EXPIRE_HOURS", 24)
	v.SetDefault("AI_BASE_URL", "http://localhost:8000")
	v.SetDefault("AI_TIMEOUT_SECONDS", 60)
	v.SetDefault("AVATAR_FOLDER", "hcm-chatbot/avatars")

	App = &Config{
		ServerAddr: v.GetString("SERVER_ADDR"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetInt("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),

		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpireHours: v.GetInt("JWT_EXPIRE_HOURS"),

		AIBaseURL:        v.GetString("AI_BASE_URL"),
		AITimeoutSeconds: v.GetInt("AI_TIMEOUT_SECONDS"),

		CloudinaryCloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: v.GetString("CLOUDINARY_API_SECRET"),
		AvatarFolder:        v.GetString("AVATAR_FOLDER"),
	}
	return App
}
