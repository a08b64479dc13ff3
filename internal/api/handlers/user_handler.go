package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grodno-ai/club-backend/internal/api/middleware"
	"github.com/grodno-ai/club-backend/internal/models"
	"github.com/grodno-ai/club-backend/internal/services"
)

type UserHandler struct {
	authService *services.AuthService
	activityLog *services.ActivityLogService
}

func NewUserHandler(authService *services.AuthService, activityLog *services.ActivityLogService) *UserHandler {
	return &UserHandler{authService: authService, activityLog: activityLog}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list admin users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.CreateUser(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin user"})
		return
	}

	actor := actorID(c)
	h.activityLog.Record(actor, services.ActionAdminUserCreated, models.JSONMap{
		"email": user.Email,
	})

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.authService.DeleteUser(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete admin user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func actorID(c *gin.Context) *string {
	if v, ok := c.Get(middleware.UserIDKey); ok {
		if id, ok := v.(uint); ok {
			s := strconv.FormatUint(uint64(id), 10)
			return &s
		}
	}
	return nil
}
