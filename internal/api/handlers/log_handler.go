package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grodno-ai/club-backend/internal/services"
)

type LogHandler struct {
	activityLog *services.ActivityLogService
}

func NewLogHandler(activityLog *services.ActivityLogService) *LogHandler {
	return &LogHandler{activityLog: activityLog}
}

// List returns activity log entries, newest first.
func (h *LogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.activityLog.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activity logs"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
