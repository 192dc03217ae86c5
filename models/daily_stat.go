package models

import "time"

// DailyStat 每日统计快照，按日期一条
type DailyStat struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Date               time.Time `json:"date" gorm:"uniqueIndex"`
	TotalUsers         int       `json:"total_users"`
	NewUsers           int       `json:"new_users"`
	ActiveUsers        int       `json:"active_users"`
	TotalMessages      int       `json:"total_messages"`
	TotalConversations int       `json:"total_conversations"`
	CreatedAt          time.Time `json:"created_at"`
}
