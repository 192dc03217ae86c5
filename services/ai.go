package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chatbot-api/config"
	"chatbot-api/utils"

	"go.uber.org/zap"
)

// AnswerClient 问答服务客户端接口
type AnswerClient interface {
	Ask(ctx context.Context, question string) (*AIResponse, error)
}

// AI 全局问答客户端，main 初始化
var AI AnswerClient

type AIResponse struct {
	Answer      string   `json:"answer"`
	Sources     []string `json:"sources"`
	Confidence  int      `json:"confidence"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
}

type aiRequest struct {
	Question string `json:"question"`
}

// AIClient 调用外部 AI 问答服务（Python RAG 后端）
type AIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAIClient(baseURL string, timeout time.Duration) *AIClient {
	return &AIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// InitAI 按配置初始化全局客户端
func InitAI() {
	AI = NewAIClient(config.App.AIBaseURL, time.Duration(config.App.AITimeoutSeconds)*time.Second)
}

// Ask 发送问题，超时或非 2xx 一律按服务不可用处理
func (c *AIClient) Ask(ctx context.Context, question string) (*AIResponse, error) {
	body, err := json.Marshal(aiRequest{Question: question})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		config.Logger.Warn("AI service request failed", zap.Error(err))
		return nil, utils.NewUnavailableError("AI service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		config.Logger.Warn("AI service returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, utils.NewUnavailableError("AI service unavailable")
	}

	var result AIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, utils.NewUnavailableError(fmt.Sprintf("AI service returned invalid response: %v", err))
	}
	return &result, nil
}
