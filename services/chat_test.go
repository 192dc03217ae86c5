package services

import (
	"context"
	"strings"
	"testing"

	"chatbot-api/config"
	"chatbot-api/models"
	"chatbot-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAI struct {
	resp *AIResponse
	err  error
}

func (s *stubAI) Ask(ctx context.Context, question string) (*AIResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func createTestUser(t *testing.T, id, username string) models.User {
	t.Helper()
	user := models.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
		Status:       models.StatusEnable,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func TestSendMessageCreatesConversation(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{resp: &AIResponse{Answer: "Hi there", Sources: []string{}, Confidence: 90}}

	result, err := SendMessage(context.Background(), "u1", "", "Hello")
	require.NoError(t, err)
	require.NotEmpty(t, result.ConversationID)

	assert.Equal(t, "Hello", result.UserMessage.Content)
	assert.Equal(t, models.MessageRoleUser, result.UserMessage.Role)
	assert.Equal(t, "Hi there", result.AssistantMessage.Content)
	assert.Equal(t, models.MessageRoleAssistant, result.AssistantMessage.Role)
	require.NotNil(t, result.AssistantMessage.Confidence)
	assert.Equal(t, 90, *result.AssistantMessage.Confidence)

	var conv models.Conversation
	require.NoError(t, config.DB.First(&conv, "id = ?", result.ConversationID).Error)
	assert.Equal(t, "u1", conv.UserID)
	assert.Equal(t, "Hello", conv.Title)
	assert.Equal(t, 2, conv.MessageCount)

	var user models.User
	require.NoError(t, config.DB.First(&user, "id = ?", "u1").Error)
	assert.Equal(t, 1, user.TotalConversations)
	assert.Equal(t, 1, user.TotalMessages)
}

func TestSendMessageTruncatesLongTitle(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{resp: &AIResponse{Answer: "ok"}}

	long := strings.Repeat("a", 80)
	result, err := SendMessage(context.Background(), "u1", "", long)
	require.NoError(t, err)

	var conv models.Conversation
	require.NoError(t, config.DB.First(&conv, "id = ?", result.ConversationID).Error)
	assert.Equal(t, strings.Repeat("a", 50)+"...", conv.Title)
	assert.Len(t, conv.Title, 53)
}

func TestSendMessageShortTitleKeptVerbatim(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{resp: &AIResponse{Answer: "ok"}}

	result, err := SendMessage(context.Background(), "u1", "", "short question")
	require.NoError(t, err)

	var conv models.Conversation
	require.NoError(t, config.DB.First(&conv, "id = ?", result.ConversationID).Error)
	assert.Equal(t, "short question", conv.Title)
}

func TestSendMessageAIFailureKeepsUserMessage(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{err: utils.NewUnavailableError("AI service unavailable")}

	_, err := SendMessage(context.Background(), "u1", "", "Hello")
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.Status)

	// 用户消息已落库，且没有助手消息
	var messages []models.Message
	require.NoError(t, config.DB.Find(&messages).Error)
	require.Len(t, messages, 1)
	assert.Equal(t, models.MessageRoleUser, messages[0].Role)

	var conv models.Conversation
	require.NoError(t, config.DB.First(&conv).Error)
	assert.Equal(t, 1, conv.MessageCount)
}

func TestSendMessageEmptyAnswerUsesFallback(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{resp: &AIResponse{Answer: ""}}

	result, err := SendMessage(context.Background(), "u1", "", "Hello")
	require.NoError(t, err)
	assert.Equal(t, fallbackAnswer, result.AssistantMessage.Content)
}

func TestSendMessageToForeignConversationNotFound(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	createTestUser(t, "u2", "bob")
	AI = &stubAI{resp: &AIResponse{Answer: "ok"}}

	result, err := SendMessage(context.Background(), "u1", "", "Hello")
	require.NoError(t, err)

	// 别人的会话按不存在处理，且不产生任何写入
	_, err = SendMessage(context.Background(), "u2", result.ConversationID, "sneaky")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	var count int64
	require.NoError(t, config.DB.Model(&models.Message{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSendMessageAppendsToExistingConversation(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{resp: &AIResponse{Answer: "first"}}

	first, err := SendMessage(context.Background(), "u1", "", "Hello")
	require.NoError(t, err)

	AI = &stubAI{resp: &AIResponse{Answer: "second"}}
	second, err := SendMessage(context.Background(), "u1", first.ConversationID, "Again")
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	messages, err := GetConversationMessages("u1", first.ConversationID, false)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	// 按创建时间升序
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
	}

	var user models.User
	require.NoError(t, config.DB.First(&user, "id = ?", "u1").Error)
	assert.Equal(t, 1, user.TotalConversations)
	assert.Equal(t, 2, user.TotalMessages)
}

func TestDeleteConversationCascadesMessages(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{resp: &AIResponse{Answer: "ok"}}

	result, err := SendMessage(context.Background(), "u1", "", "Hello")
	require.NoError(t, err)

	require.NoError(t, DeleteConversation("u1", result.ConversationID, false))

	var messageCount int64
	require.NoError(t, config.DB.Model(&models.Message{}).Where("conversation_id = ?", result.ConversationID).Count(&messageCount).Error)
	assert.EqualValues(t, 0, messageCount)

	var convCount int64
	require.NoError(t, config.DB.Model(&models.Conversation{}).Count(&convCount).Error)
	assert.EqualValues(t, 0, convCount)
}

func TestDeleteForeignConversationNotFound(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	createTestUser(t, "u2", "bob")
	AI = &stubAI{resp: &AIResponse{Answer: "ok"}}

	result, err := SendMessage(context.Background(), "u1", "", "Hello")
	require.NoError(t, err)

	err = DeleteConversation("u2", result.ConversationID, false)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	// 管理员可以删除任何会话
	require.NoError(t, DeleteConversation("u2", result.ConversationID, true))
}

func TestGetUserConversationsOrder(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "u1", "alice")
	AI = &stubAI{resp: &AIResponse{Answer: "ok"}}

	first, err := SendMessage(context.Background(), "u1", "", "first thread")
	require.NoError(t, err)
	second, err := SendMessage(context.Background(), "u1", "", "second thread")
	require.NoError(t, err)

	// 给第一个会话追加消息，它应该排到最前
	_, err = SendMessage(context.Background(), "u1", first.ConversationID, "bump")
	require.NoError(t, err)

	conversations, err := GetUserConversations("u1")
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, first.ConversationID, conversations[0].ID)
	assert.Equal(t, second.ConversationID, conversations[1].ID)
}
