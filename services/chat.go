package services

import (
	"context"
	"time"

	"chatbot-api/config"
	"chatbot-api/models"
	"chatbot-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// 新会话标题取首条消息前 50 个字符
	titleMaxLen = 50
	// AI 没有返回答案时的兜底文案
	fallbackAnswer = "Sorry, I couldn't generate a response."
)

// SendResult 发送消息的返回结果
type SendResult struct {
	ConversationID   string         `json:"conversation_id"`
	UserMessage      models.Message `json:"user_message"`
	AssistantMessage models.Message `json:"assistant_message"`
}

func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) > titleMaxLen {
		return string(runes[:titleMaxLen]) + "..."
	}
	return content
}

// SendMessage 发送消息并获取 AI 回答。
// 用户消息先落库再调 AI；AI 失败时用户消息保留，不生成助手消息，整体返回 503。
func SendMessage(ctx context.Context, userID, conversationID, content string) (*SendResult, error) {
	var conv models.Conversation
	newConversation := conversationID == ""

	// 归属校验必须在任何写入之前
	if !newConversation {
		if err := config.DB.Where("id = ?", conversationID).First(&conv).Error; err != nil || conv.UserID != userID {
			return nil, utils.NewNotFoundError("Conversation not found")
		}
	}

	userMessage := models.Message{
		ID:      uuid.New().String(),
		Role:    models.MessageRoleUser,
		Content: content,
	}

	// 第一个事务：会话（如需新建）+ 用户消息 + 计数，一起提交
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if newConversation {
			conv = models.Conversation{
				ID:        uuid.New().String(),
				UserID:    userID,
				Title:     deriveTitle(content),
				UpdatedAt: now,
			}
			if err := tx.Create(&conv).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("total_conversations", gorm.Expr("total_conversations + 1")).Error; err != nil {
				return err
			}
		}

		userMessage.ConversationID = conv.ID
		userMessage.CreatedAt = now
		if err := tx.Create(&userMessage).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Conversation{}).Where("id = ?", conv.ID).
			Updates(map[string]interface{}{
				"message_count": gorm.Expr("message_count + 1"),
				"updated_at":    now,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("total_messages", gorm.Expr("total_messages + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	// 调外部 AI 服务，失败时用户消息已落库
	aiResult, err := AI.Ask(ctx, content)
	if err != nil {
		return nil, err
	}

	answer := aiResult.Answer
	if answer == "" {
		answer = fallbackAnswer
	}

	assistantMessage := models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		Role:           models.MessageRoleAssistant,
		Content:        answer,
		Sources:        aiResult.Sources,
		Confidence:     &aiResult.Confidence,
	}

	// 第二个事务：助手消息 + 计数，一起提交
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		assistantMessage.CreatedAt = now
		if err := tx.Create(&assistantMessage).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).Where("id = ?", conv.ID).
			Updates(map[string]interface{}{
				"message_count": gorm.Expr("message_count + 1"),
				"updated_at":    now,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &SendResult{
		ConversationID:   conv.ID,
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	}, nil
}

// GetUserConversations 按最近更新时间倒序返回用户会话
func GetUserConversations(userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := config.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}

// GetConversationMessages 返回会话消息，按创建时间升序
func GetConversationMessages(userID, conversationID string, isAdmin bool) ([]models.Message, error) {
	var conv models.Conversation
	if err := config.DB.Where("id = ?", conversationID).First(&conv).Error; err != nil {
		return nil, utils.NewNotFoundError("Conversation not found")
	}
	if conv.UserID != userID && !isAdmin {
		return nil, utils.NewNotFoundError("Conversation not found")
	}

	var messages []models.Message
	err := config.DB.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// DeleteConversation 删除会话并级联删除其消息
func DeleteConversation(userID, conversationID string, isAdmin bool) error {
	var conv models.Conversation
	if err := config.DB.Where("id = ?", conversationID).First(&conv).Error; err != nil {
		return utils.NewNotFoundError("Conversation not found")
	}
	if conv.UserID != userID && !isAdmin {
		return utils.NewNotFoundError("Conversation not found")
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", conversationID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&conv).Error
	})
}
