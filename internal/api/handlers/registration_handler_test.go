package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/models"
	"github.com/grodno-ai/club-backend/internal/services"
)

func registrationRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeDeliveryTransport) {
	t.Helper()

	db := newTestDB(t)
	transport := &fakeDeliveryTransport{}

	settings := services.NewSettingsService(db)
	templates := services.NewTemplateService(db)
	activityLog := services.NewActivityLogService(db)
	notifications := services.NewNotificationService(settings, templates, activityLog, transport)
	h := NewRegistrationHandler(db, notifications, activityLog)

	router := gin.New()
	router.POST("/api/v1/registrations", h.Create)
	router.GET("/api/v1/registrations", h.List)
	router.DELETE("/api/v1/registrations/:id", h.Delete)
	return router, db, transport
}

func seedCourse(t *testing.T, db *gorm.DB) models.Course {
	t.Helper()
	course := models.Course{Title: "ML Basics", Description: "d", Duration: "8 weeks"}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestCreateRegistration(t *testing.T) {
	router, db, _ := registrationRouter(t)
	course := seedCourse(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/registrations", gin.H{
		"name":      "Ann",
		"email":     "ann@x.com",
		"phone":     "+375291234567",
		"telegram":  "@ann",
		"course_id": course.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Registration
	decodeJSON(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ann", created.Name)

	var stored models.Registration
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, course.ID, stored.CourseID)

	var logged int64
	require.NoError(t, db.Model(&models.ActivityLog{}).
		Where("action = ?", services.ActionRegistration).Count(&logged).Error)
	assert.Equal(t, int64(1), logged)
}

func TestCreateRegistration_UnknownCourse(t *testing.T) {
	router, _, transport := registrationRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/registrations", gin.H{
		"name":      "Ann",
		"phone":     "+375291234567",
		"telegram":  "@ann",
		"course_id": "does-not-exist",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	decodeJSON(t, w, &resp)
	assert.Equal(t, "unknown course", resp["error"])
	assert.Empty(t, transport.calls)
}

func TestCreateRegistration_MissingRequiredFields(t *testing.T) {
	router, db, _ := registrationRouter(t)
	course := seedCourse(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/registrations", gin.H{
		"name":      "Ann",
		"course_id": course.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Registration{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateRegistration_EmailIsOptional(t *testing.T) {
	router, db, _ := registrationRouter(t)
	course := seedCourse(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/registrations", gin.H{
		"name":      "Ann",
		"phone":     "+375291234567",
		"telegram":  "@ann",
		"course_id": course.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListRegistrations_NewestFirst(t *testing.T) {
	router, db, _ := registrationRouter(t)
	course := seedCourse(t, db)

	older := models.Registration{
		Name: "First", Phone: "1", Telegram: "@a", CourseID: course.ID,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&older).Error)
	newer := models.Registration{
		Name: "Second", Phone: "2", Telegram: "@b", CourseID: course.ID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&newer).Error)

	w := doJSON(t, router, http.MethodGet, "/api/v1/registrations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Registration
	decodeJSON(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Name)
	assert.Equal(t, "First", list[1].Name)
}

func TestDeleteRegistration(t *testing.T) {
	router, db, _ := registrationRouter(t)
	course := seedCourse(t, db)

	reg := models.Registration{Name: "Ann", Phone: "1", Telegram: "@a", CourseID: course.ID}
	require.NoError(t, db.Create(&reg).Error)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/registrations/"+reg.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Registration{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
