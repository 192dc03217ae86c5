package models

import (
	"time"
)

type Message struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ConversationID string    `json:"conversation_id" gorm:"type:varchar(36);index;not null"`
	Role           string    `json:"role" gorm:"type:varchar(10)"` // "user" or "assistant"
	Content        string    `json:"content" gorm:"type:text"`
	Sources        []string  `json:"sources,omitempty" gorm:"serializer:json"`
	Confidence     *int      `json:"confidence_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
