package routes

import (
	"chatbot-api/controllers"
	"chatbot-api/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes() *gin.Engine {

	r := gin.Default()
	// 配置跨域中间件
	corsConfig := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/validate-token", controllers.ValidateToken)
		auth.GET("/me", middlewares.TokenAuthMiddleware(), controllers.GetCurrentUser)
	}

	chat := api.Group("/chat", middlewares.TokenAuthMiddleware())
	{
		chat.POST("/send", controllers.SendMessage)
		chat.GET("/conversations", controllers.GetConversations)
		chat.GET("/conversations/:id/messages", controllers.GetMessages)
		chat.DELETE("/conversations/:id", controllers.DeleteConversation)
	}

	users := api.Group("/users", middlewares.TokenAuthMiddleware())
	{
		users.GET("", middlewares.AdminRequired(), controllers.GetAllUsers)
		users.GET("/role/:role", middlewares.AdminRequired(), controllers.GetUsersByRole)
		users.GET("/:id", controllers.GetUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteUser)
		users.POST("/:id/toggle-status", middlewares.AdminRequired(), controllers.ToggleUserStatus)
		users.POST("/:id/upload-avatar", controllers.UploadAvatar)
		users.DELETE("/:id/avatar", controllers.DeleteAvatar)
		users.PUT("/:id/change-password", controllers.ChangePassword)
	}

	dashboard := api.Group("/dashboard", middlewares.TokenAuthMiddleware(), middlewares.AdminRequired())
	{
		dashboard.GET("/stats", controllers.GetDashboardStats)
		dashboard.GET("/users/stats", controllers.GetUserStats)
		dashboard.GET("/conversations/stats", controllers.GetConversationStats)
		dashboard.GET("/messages/stats", controllers.GetMessageStats)
		dashboard.POST("/update-daily-stats", controllers.UpdateDailyStats)
		dashboard.GET("/stats/date-range", controllers.GetStatsForDateRange)
	}

	return r
}
