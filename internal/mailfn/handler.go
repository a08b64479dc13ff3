package mailfn

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grodno-ai/club-backend/internal/logger"
	"github.com/grodno-ai/club-backend/internal/mail"
)

// SendRequest is the wire contract of the delivery function.
type SendRequest struct {
	To      string            `json:"to"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html"`
	SMTP    mail.SMTPSettings `json:"smtp"`
}

// Handler serves the delivery function endpoints.
type Handler struct {
	sender Sender
}

func NewHandler(sender Sender) *Handler {
	return &Handler{sender: sender}
}

// CORS answers preflight requests and stamps permissive headers on every
// response, so browser clients on any origin can invoke the function.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")

		if c.Request.Method == http.MethodOptions {
			c.String(http.StatusOK, "ok")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Send validates and delivers a single message.
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.To == "" || req.Subject == "" || req.HTML == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: to, subject, html",
		})
		return
	}

	if req.SMTP.Host == "" || req.SMTP.User == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid SMTP configuration",
		})
		return
	}

	msg := mail.Message{Recipient: req.To, Subject: req.Subject, HTML: req.HTML}
	if err := h.sender.Send(c.Request.Context(), msg, req.SMTP); err != nil {
		logger.WithFields(map[string]interface{}{
			"to":        req.To,
			"subject":   req.Subject,
			"smtp_host": req.SMTP.Host,
		}).WithError(err).Error("email delivery failed")

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email sent successfully",
		"details": gin.H{
			"to":        req.To,
			"subject":   req.Subject,
			"smtp_host": req.SMTP.Host,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// Router builds the function's HTTP engine.
func Router(sender Sender) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CORS())

	h := NewHandler(sender)
	router.POST("/send", h.Send)
	router.OPTIONS("/send", func(c *gin.Context) {}) // handled by CORS middleware

	return router
}
