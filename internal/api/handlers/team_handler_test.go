package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/models"
)

func teamRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	h := NewTeamHandler(db)

	router := gin.New()
	router.GET("/api/v1/team", h.ListPublic)
	router.GET("/api/v1/admin/team", h.List)
	return router, db
}

func TestListPublic_FiltersInactiveAndOrders(t *testing.T) {
	router, db := teamRouter(t)

	members := []models.TeamMember{
		{Name: "Second", Role: "r", OrderPosition: 2, IsActive: true},
		{Name: "Hidden", Role: "r", OrderPosition: 1},
		{Name: "First", Role: "r", OrderPosition: 1, IsActive: true},
	}
	for i := range members {
		require.NoError(t, db.Create(&members[i]).Error)
	}
	require.NoError(t, db.Model(&members[1]).Update("is_active", false).Error)

	w := doJSON(t, router, http.MethodGet, "/api/v1/team", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.TeamMember
	decodeJSON(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, "Second", list[1].Name)
}

func TestAdminList_IncludesInactive(t *testing.T) {
	router, db := teamRouter(t)

	hidden := models.TeamMember{Name: "Hidden", Role: "r"}
	require.NoError(t, db.Create(&hidden).Error)
	require.NoError(t, db.Model(&hidden).Update("is_active", false).Error)

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/team", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.TeamMember
	decodeJSON(t, w, &list)
	assert.Len(t, list, 1)
}
