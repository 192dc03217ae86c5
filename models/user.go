package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username           string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email              string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash       string    `json:"-" gorm:"not null"`
	FullName           string    `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url" gorm:"default:NULL"` // 允许 NULL
	Role               Role      `json:"role" gorm:"type:varchar(10);default:'user'"`
	Status             Status    `json:"status" gorm:"type:varchar(10);default:'enable'"`
	TotalMessages      int       `json:"total_messages"`
	TotalConversations int       `json:"total_conversations"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
