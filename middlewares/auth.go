package middlewares

import (
	"net/http"
	"strings"

	"chatbot-api/models"
	"chatbot-api/services"
	"chatbot-api/utils"

	"github.com/gin-gonic/gin"
)

// TokenAuthMiddleware 校验 Bearer Token 并把声明写入上下文。
// 无状态校验，不回查数据库。
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Missing or invalid authorization header")
			c.Abort()
			return
		}

		claims, err := services.ParseToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminRequired 仅管理员可访问
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(models.RoleAdmin) {
			utils.RespondError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
