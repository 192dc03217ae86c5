package models

import "time"

type Conversation struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID       string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Title        string    `gorm:"size:255" json:"title"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	// 关联消息，删除会话时级联删除
	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"-"`
}
