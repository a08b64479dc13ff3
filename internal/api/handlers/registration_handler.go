package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/api/middleware"
	"github.com/grodno-ai/club-backend/internal/metrics"
	"github.com/grodno-ai/club-backend/internal/models"
	"github.com/grodno-ai/club-backend/internal/services"
)

type RegistrationHandler struct {
	DB            *gorm.DB
	notifications *services.NotificationService
	activityLog   *services.ActivityLogService
}

func NewRegistrationHandler(db *gorm.DB, notifications *services.NotificationService, activityLog *services.ActivityLogService) *RegistrationHandler {
	return &RegistrationHandler{DB: db, notifications: notifications, activityLog: activityLog}
}

type createRegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone" binding:"required"`
	Telegram string `json:"telegram" binding:"required"`
	CourseID string `json:"course_id" binding:"required"`
}

// Create stores a public registration and notifies administrators in the
// background. The submitter's success never depends on the email fan-out.
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req createRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var course models.Course
	if err := h.DB.First(&course, "id = ?", req.CourseID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown course"})
		return
	}

	registration := models.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Telegram: req.Telegram,
		CourseID: req.CourseID,
	}
	if err := h.DB.Create(&registration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save registration"})
		return
	}

	metrics.IncRegistration()
	h.activityLog.Record(nil, services.ActionRegistration, models.JSONMap{
		"registration_id": registration.ID,
		"course":          course.Title,
	})

	entry := middleware.GetRequestLogger(c)
	go func() {
		event := services.RegistrationEvent{
			Name:       registration.Name,
			Email:      registration.Email,
			Phone:      registration.Phone,
			Telegram:   registration.Telegram,
			CourseName: course.Title,
			CreatedAt:  registration.CreatedAt,
		}
		if err := h.notifications.NotifyNewRegistration(context.Background(), event); err != nil {
			entry.WithError(err).Warn("admin notification for registration failed")
		}
	}()

	c.JSON(http.StatusCreated, registration)
}

// List returns all registrations for the admin panel, newest first.
func (h *RegistrationHandler) List(c *gin.Context) {
	var registrations []models.Registration
	if err := h.DB.Order("created_at desc").Find(&registrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list registrations"})
		return
	}
	c.JSON(http.StatusOK, registrations)
}

func (h *RegistrationHandler) Delete(c *gin.Context) {
	if err := h.DB.Delete(&models.Registration{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete registration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
