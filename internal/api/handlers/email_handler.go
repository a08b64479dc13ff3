package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grodno-ai/club-backend/internal/services"
)

// EmailHandler exposes the email-system test and diagnostics endpoints.
type EmailHandler struct {
	notifications *services.NotificationService
	diagnostics   *services.DiagnosticsService
}

func NewEmailHandler(notifications *services.NotificationService, diagnostics *services.DiagnosticsService) *EmailHandler {
	return &EmailHandler{notifications: notifications, diagnostics: diagnostics}
}

type testEmailRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
}

// SendTest delivers a test message so administrators can verify SMTP works.
func (h *EmailHandler) SendTest(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notifications.SendTest(c.Request.Context(), req.Recipient); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test email sent"})
}

// Diagnose returns a point-in-time snapshot of the email subsystem.
func (h *EmailHandler) Diagnose(c *gin.Context) {
	diagnosis, err := h.diagnostics.Diagnose()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, diagnosis)
}
