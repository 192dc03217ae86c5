package controllers

import (
	"net/http"
	"time"

	"chatbot-api/services"
	"chatbot-api/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats 仪表盘汇总
func GetDashboardStats(c *gin.Context) {
	stats, err := services.GetDashboardStats()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Dashboard stats retrieved successfully")
}

func GetUserStats(c *gin.Context) {
	stats, err := services.GetUserStats()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "User stats retrieved successfully")
}

func GetConversationStats(c *gin.Context) {
	stats, err := services.GetConversationStats()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Conversation stats retrieved successfully")
}

func GetMessageStats(c *gin.Context) {
	stats, err := services.GetMessageStats()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Message stats retrieved successfully")
}

// UpdateDailyStats 生成/更新当天统计快照
func UpdateDailyStats(c *gin.Context) {
	if err := services.UpdateDailyStats(); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Daily stats updated successfully")
}

// GetStatsForDateRange 查询日期区间统计，参数格式 2006-01-02
func GetStatsForDateRange(c *gin.Context) {
	from, err := time.ParseInLocation("2006-01-02", c.Query("from_date"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid from_date, expected YYYY-MM-DD")
		return
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to_date"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid to_date, expected YYYY-MM-DD")
		return
	}

	stats, err := services.GetStatsForDateRange(from, to)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Stats for date range retrieved successfully")
}
