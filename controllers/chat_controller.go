package controllers

import (
	"net/http"

	"chatbot-api/models"
	"chatbot-api/services"
	"chatbot-api/utils"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("role") == string(models.RoleAdmin)
}

// SendMessage 发送消息并获取 AI 回答
func SendMessage(c *gin.Context) {
	var input struct {
		Message        string `json:"message" binding:"required"`
		ConversationID string `json:"conversation_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.SendMessage(c.Request.Context(), currentUserID(c), input.ConversationID, input.Message)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Message sent successfully")
}

// GetConversations 获取当前用户的会话列表，最近更新的在前
func GetConversations(c *gin.Context) {
	conversations, err := services.GetUserConversations(currentUserID(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, conversations, "Conversations retrieved successfully")
}

// GetMessages 获取会话的消息列表，按时间升序
func GetMessages(c *gin.Context) {
	conversationID := c.Param("id")

	messages, err := services.GetConversationMessages(currentUserID(c), conversationID, isAdmin(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, messages, "Messages retrieved successfully")
}

// DeleteConversation 删除会话及其消息
func DeleteConversation(c *gin.Context) {
	conversationID := c.Param("id")

	if err := services.DeleteConversation(currentUserID(c), conversationID, isAdmin(c)); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Conversation deleted successfully")
}
