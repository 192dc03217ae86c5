package controllers

import (
	"net/http"

	"chatbot-api/models"
	"chatbot-api/services"
	"chatbot-api/utils"

	"github.com/gin-gonic/gin"
)

// AuthResponse 注册/登录返回 Token 和用户信息
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// 用户注册
func Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		FullName string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := services.Register(input.Username, input.Email, input.Password, input.FullName)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondSuccess(c, AuthResponse{Token: token, User: *user}, "User registered successfully")
}

// 用户登录
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := services.Login(input.Username, input.Password)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondSuccess(c, AuthResponse{Token: token, User: *user}, "Login successful")
}

// ValidateToken 校验 Token 是否有效
func ValidateToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondSuccess(c, gin.H{"is_valid": services.ValidateToken(input.Token)}, "Token validation completed")
}

// GetCurrentUser 返回当前登录用户
func GetCurrentUser(c *gin.Context) {
	user, err := services.GetUserByUsername(c.GetString("username"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User information retrieved")
}
