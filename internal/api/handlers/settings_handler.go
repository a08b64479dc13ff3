package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grodno-ai/club-backend/internal/mail"
	"github.com/grodno-ai/club-backend/internal/services"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetEmailSettings returns the notification toggle and admin recipient list.
func (h *SettingsHandler) GetEmailSettings(c *gin.Context) {
	settings, err := h.settings.EmailSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load email settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateEmailSettings saves the notification toggle and admin recipient list.
func (h *SettingsHandler) UpdateEmailSettings(c *gin.Context) {
	var req services.EmailSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.settings.SaveEmailSettings(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save email settings"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetSMTPSettings returns SMTP parameters with the password masked.
func (h *SettingsHandler) GetSMTPSettings(c *gin.Context) {
	smtp, err := h.settings.SMTPSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load SMTP settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"host":         smtp.Host,
		"port":         smtp.Port,
		"secure":       smtp.Secure,
		"user":         smtp.User,
		"has_password": smtp.Pass != "",
	})
}

// UpdateSMTPSettings saves SMTP parameters.
func (h *SettingsHandler) UpdateSMTPSettings(c *gin.Context) {
	var req mail.SMTPSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.settings.SaveSMTPSettings(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save SMTP settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "SMTP settings saved"})
}

type alertURLRequest struct {
	URL string `json:"url"`
}

// UpdateAlertURL saves the optional shoutrrr alert channel URL.
func (h *SettingsHandler) UpdateAlertURL(c *gin.Context) {
	var req alertURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.settings.SaveAlertURL(req.URL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save alert URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "alert URL saved"})
}
