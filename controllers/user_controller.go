package controllers

import (
	"net/http"
	"strings"

	"chatbot-api/config"
	"chatbot-api/models"
	"chatbot-api/services"
	"chatbot-api/utils"

	"github.com/gin-gonic/gin"
)

// GetAllUsers 获取全部用户（仅管理员）
func GetAllUsers(c *gin.Context) {
	users, err := services.GetAllUsers()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "Users retrieved successfully")
}

// GetUser 获取单个用户，只能查自己，管理员不限
func GetUser(c *gin.Context) {
	id := c.Param("id")
	if id != currentUserID(c) && !isAdmin(c) {
		utils.RespondError(c, http.StatusForbidden, "Access denied")
		return
	}

	user, err := services.GetUserByID(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User retrieved successfully")
}

// UpdateUser 更新用户资料，角色/状态只有管理员能改
func UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if id != currentUserID(c) && !isAdmin(c) {
		utils.RespondError(c, http.StatusForbidden, "Access denied")
		return
	}

	// Role/Status 是枚举类型，非法值在反序列化时直接报错
	var input struct {
		FullName  string        `json:"full_name"`
		AvatarURL *string       `json:"avatar_url"`
		Role      models.Role   `json:"role"`
		Status    models.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := services.UpdateUser(id, services.UpdateUserInput{
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
		Role:      input.Role,
		Status:    input.Status,
	}, isAdmin(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User updated successfully")
}

// DeleteUser 删除用户（仅管理员，不能删自己）
func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == currentUserID(c) {
		utils.RespondError(c, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	if err := services.DeleteUser(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// ToggleUserStatus 切换用户启用/禁用状态（仅管理员，不能改自己）
func ToggleUserStatus(c *gin.Context) {
	id := c.Param("id")
	if id == currentUserID(c) {
		utils.RespondError(c, http.StatusBadRequest, "Cannot change your own status")
		return
	}

	user, err := services.ToggleUserStatus(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"status": user.Status}, "User status updated successfully")
}

// GetUsersByRole 按角色查询用户（仅管理员）
func GetUsersByRole(c *gin.Context) {
	role := models.Role(c.Param("role"))
	if !role.Valid() {
		utils.RespondError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	users, err := services.GetUsersByRole(role)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "Users retrieved successfully")
}

// UploadAvatar 上传头像到 Cloudinary，旧头像尽力删除
func UploadAvatar(c *gin.Context) {
	id := c.Param("id")
	if id != currentUserID(c) && !isAdmin(c) {
		utils.RespondError(c, http.StatusForbidden, "Access denied")
		return
	}

	header, err := c.FormFile("avatar")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	user, err := services.GetUserByID(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	avatarURL, err := services.UploadAvatar(c.Request.Context(), header, config.App.AvatarFolder)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	// 删除旧头像失败不阻塞更新
	if user.AvatarURL != nil && strings.Contains(*user.AvatarURL, "cloudinary.com") {
		services.DeleteImage(c.Request.Context(), services.GetPublicIDFromURL(*user.AvatarURL))
	}

	if _, err := services.SetUserAvatar(id, &avatarURL); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"avatar_url": avatarURL}, "Avatar uploaded successfully")
}

// DeleteAvatar 删除用户头像
func DeleteAvatar(c *gin.Context) {
	id := c.Param("id")
	if id != currentUserID(c) && !isAdmin(c) {
		utils.RespondError(c, http.StatusForbidden, "Access denied")
		return
	}

	user, err := services.GetUserByID(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if user.AvatarURL != nil && strings.Contains(*user.AvatarURL, "cloudinary.com") {
		services.DeleteImage(c.Request.Context(), services.GetPublicIDFromURL(*user.AvatarURL))
	}

	if _, err := services.SetUserAvatar(id, nil); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Avatar deleted successfully")
}

// ChangePassword 修改密码，只能改自己的
func ChangePassword(c *gin.Context) {
	id := c.Param("id")
	if id != currentUserID(c) {
		utils.RespondError(c, http.StatusForbidden, "Access denied")
		return
	}

	var input struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.ChangePassword(id, input.CurrentPassword, input.NewPassword); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Password changed successfully")
}
