package services

import (
	"time"

	"chatbot-api/config"
	"chatbot-api/models"

	"github.com/google/uuid"
)

// DashboardStats 仪表盘汇总
type DashboardStats struct {
	TotalUsers         int64              `json:"total_users"`
	ActiveUsers        int64              `json:"active_users"`
	NewUsersToday      int64              `json:"new_users_today"`
	TotalConversations int64              `json:"total_conversations"`
	TotalMessages      int64              `json:"total_messages"`
	MessagesToday      int64              `json:"messages_today"`
	ConversationsToday int64              `json:"conversations_today"`
	RecentStats        []models.DailyStat `json:"recent_stats"`
}

type UserStats struct {
	TotalCount    int64         `json:"total_count"`
	ActiveCount   int64         `json:"active_count"`
	DisabledCount int64         `json:"disabled_count"`
	AdminCount    int64         `json:"admin_count"`
	NewToday      int64         `json:"new_today"`
	RecentUsers   []models.User `json:"recent_users"`
}

type ConversationStats struct {
	TotalCount          int64                 `json:"total_count"`
	TodayCount          int64                 `json:"today_count"`
	ThisWeekCount       int64                 `json:"this_week_count"`
	ThisMonthCount      int64                 `json:"this_month_count"`
	RecentConversations []models.Conversation `json:"recent_conversations"`
}

type MessageStats struct {
	TotalCount             int64   `json:"total_count"`
	TodayCount             int64   `json:"today_count"`
	ThisWeekCount          int64   `json:"this_week_count"`
	ThisMonthCount         int64   `json:"this_month_count"`
	AveragePerConversation float64 `json:"average_per_conversation"`
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	today := startOfToday()

	if err := config.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("status = ?", models.StatusEnable).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("created_at >= ?", today).Count(&stats.NewUsersToday).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Conversation{}).Count(&stats.TotalConversations).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Message{}).Count(&stats.TotalMessages).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Message{}).Where("created_at >= ?", today).Count(&stats.MessagesToday).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Conversation{}).Where("created_at >= ?", today).Count(&stats.ConversationsToday).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Order("date DESC").Limit(7).Find(&stats.RecentStats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func GetUserStats() (*UserStats, error) {
	stats := &UserStats{}
	today := startOfToday()

	if err := config.DB.Model(&models.User{}).Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("status = ?", models.StatusEnable).Count(&stats.ActiveCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("status = ?", models.StatusDisable).Count(&stats.DisabledCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&stats.AdminCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("created_at >= ?", today).Count(&stats.NewToday).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Order("created_at DESC").Limit(10).Find(&stats.RecentUsers).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func GetConversationStats() (*ConversationStats, error) {
	stats := &ConversationStats{}
	today := startOfToday()
	week := today.AddDate(0, 0, -7)
	month := today.AddDate(0, 0, -30)

	if err := config.DB.Model(&models.Conversation{}).Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Conversation{}).Where("created_at >= ?", today).Count(&stats.TodayCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Conversation{}).Where("created_at >= ?", week).Count(&stats.ThisWeekCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Conversation{}).Where("created_at >= ?", month).Count(&stats.ThisMonthCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Order("created_at DESC").Limit(10).Find(&stats.RecentConversations).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func GetMessageStats() (*MessageStats, error) {
	stats := &MessageStats{}
	today := startOfToday()
	week := today.AddDate(0, 0, -7)
	month := today.AddDate(0, 0, -30)

	if err := config.DB.Model(&models.Message{}).Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Message{}).Where("created_at >= ?", today).Count(&stats.TodayCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Message{}).Where("created_at >= ?", week).Count(&stats.ThisWeekCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Message{}).Where("created_at >= ?", month).Count(&stats.ThisMonthCount).Error; err != nil {
		return nil, err
	}

	var conversationCount int64
	if err := config.DB.Model(&models.Conversation{}).Count(&conversationCount).Error; err != nil {
		return nil, err
	}
	if conversationCount > 0 {
		stats.AveragePerConversation = float64(stats.TotalCount) / float64(conversationCount)
	}
	return stats, nil
}

// UpdateDailyStats 生成或更新当天的统计快照
func UpdateDailyStats() error {
	today := startOfToday()

	var totalUsers, newUsers, activeUsers, totalMessages, totalConversations int64
	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}
	if err := config.DB.Model(&models.User{}).Where("created_at >= ?", today).Count(&newUsers).Error; err != nil {
		return err
	}
	if err := config.DB.Model(&models.User{}).Where("status = ?", models.StatusEnable).Count(&activeUsers).Error; err != nil {
		return err
	}
	if err := config.DB.Model(&models.Message{}).Count(&totalMessages).Error; err != nil {
		return err
	}
	if err := config.DB.Model(&models.Conversation{}).Count(&totalConversations).Error; err != nil {
		return err
	}

	var stat models.DailyStat
	err := config.DB.Where("date = ?", today).First(&stat).Error
	if err != nil {
		stat = models.DailyStat{
			ID:                 uuid.New().String(),
			Date:               today,
			TotalUsers:         int(totalUsers),
			NewUsers:           int(newUsers),
			ActiveUsers:        int(activeUsers),
			TotalMessages:      int(totalMessages),
			TotalConversations: int(totalConversations),
		}
		return config.DB.Create(&stat).Error
	}

	stat.TotalUsers = int(totalUsers)
	stat.NewUsers = int(newUsers)
	stat.ActiveUsers = int(activeUsers)
	stat.TotalMessages = int(totalMessages)
	stat.TotalConversations = int(totalConversations)
	return config.DB.Save(&stat).Error
}

// GetStatsForDateRange 查询日期区间内的每日统计
func GetStatsForDateRange(from, to time.Time) ([]models.DailyStat, error) {
	var stats []models.DailyStat
	err := config.DB.
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&stats).Error
	return stats, err
}
