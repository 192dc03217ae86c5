package services

import (
	"chatbot-api/config"
	"chatbot-api/models"
	"chatbot-api/utils"

	"golang.org/x/crypto/bcrypt"
)

// UpdateUserInput 更新用户请求，Role/Status 仅管理员可改
type UpdateUserInput struct {
	FullName  string
	AvatarURL *string
	Role      models.Role
	Status    models.Status
}

func GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return &user, nil
}

func GetUsersByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := config.DB.Where("role = ?", role).Order("created_at DESC").Find(&users).Error
	return users, err
}

func UpdateUser(id string, input UpdateUserInput, isAdmin bool) (*models.User, error) {
	user, err := GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.FullName = input.FullName
	user.AvatarURL = input.AvatarURL

	if isAdmin && input.Role != "" {
		user.Role = input.Role
	}
	if isAdmin && input.Status != "" {
		user.Status = input.Status
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUser(id string) error {
	result := config.DB.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("User not found or failed to delete")
	}
	return nil
}

// ToggleUserStatus 启用/禁用状态互相切换
func ToggleUserStatus(id string) (*models.User, error) {
	user, err := GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if user.Status == models.StatusEnable {
		user.Status = models.StatusDisable
	} else {
		user.Status = models.StatusEnable
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword 先校验旧密码再更新
func ChangePassword(id, currentPassword, newPassword string) error {
	user, err := GetUserByID(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return utils.NewValidationError("Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return config.DB.Model(user).Update("password_hash", string(hashed)).Error
}

// SetUserAvatar 更新用户头像地址，nil 表示清除
func SetUserAvatar(id string, avatarURL *string) (*models.User, error) {
	user, err := GetUserByID(id)
	if err != nil {
		return nil, err
	}
	user.AvatarURL = avatarURL
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
