package services

import (
	"chatbot-api/config"
	"chatbot-api/models"
	"chatbot-api/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register 注册新用户并返回 Token
func Register(username, email, password, fullName string) (*models.User, string, error) {
	// 检查用户名或邮箱是否已存在
	var existing models.User
	if err := config.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
		if existing.Username == username {
			return nil, "", utils.NewConflictError("Username already exists")
		}
		return nil, "", utils.NewConflictError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
		Role:         models.RoleUser,
		Status:       models.StatusEnable,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login 校验用户名密码并返回 Token
func Login(username, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, "", utils.NewUnauthorizedError("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", utils.NewUnauthorizedError("Invalid username or password")
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// GetUserByUsername 按用户名查询用户
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return &user, nil
}
