package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应格式 {success, message, data}
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondSuccess 返回成功响应，message 可传 nil
func RespondSuccess(c *gin.Context, data interface{}, message interface{}) {
	msg := "success"
	if s, ok := message.(string); ok && s != "" {
		msg = s
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// RespondError 返回错误响应
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}
