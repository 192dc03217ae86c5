package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatbot-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIClientAsk(t *testing.T) {
	setupTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello", req["question"])

		json.NewEncoder(w).Encode(AIResponse{
			Answer:     "Hi there",
			Sources:    []string{"doc1"},
			Confidence: 90,
		})
	}))
	defer server.Close()

	client := NewAIClient(server.URL, 5*time.Second)
	resp, err := client.Ask(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there", resp.Answer)
	assert.Equal(t, []string{"doc1"}, resp.Sources)
	assert.Equal(t, 90, resp.Confidence)
}

func TestAIClientAskServerError(t *testing.T) {
	setupTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAIClient(server.URL, 5*time.Second)
	_, err := client.Ask(context.Background(), "Hello")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.Status)
}

func TestAIClientAskUnreachable(t *testing.T) {
	setupTestDB(t)

	client := NewAIClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := client.Ask(context.Background(), "Hello")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.Status)
}
