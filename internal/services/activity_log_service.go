package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/logger"
	"github.com/grodno-ai/club-backend/internal/models"
)

// Actions recorded in the activity log.
const (
	ActionEmailAttempt     = "email_notification_attempt"
	ActionRegistration     = "registration_created"
	ActionAdminUserCreated = "admin_user_created"
	ActionTeamUpdated      = "team_updated"
)

// ActivityLogService owns creation of activity log entries. The log is
// append-only; entries are never updated or deleted outside retention pruning.
type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

// Record appends one entry. Persistence failures are reported via warning
// output only; logging must never abort the operation being logged.
func (s *ActivityLogService) Record(userID *string, action string, details models.JSONMap) {
	entry := models.ActivityLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		logger.WithFields(map[string]interface{}{"action": action}).
			WithError(err).Warn("failed to write activity log entry")
	}
}

// RecordEmailAttempt appends one dispatch-attempt entry, success or failure.
func (s *ActivityLogService) RecordEmailAttempt(recipient, subject, status, method string) {
	s.Record(nil, ActionEmailAttempt, models.JSONMap{
		"recipient": recipient,
		"subject":   subject,
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"method":    method,
	})
}

// List returns entries newest-first, up to limit (0 means a sane default).
func (s *ActivityLogService) List(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []models.ActivityLog
	err := s.db.Order("created_at desc").Limit(limit).Find(&entries).Error
	return entries, err
}

// CountEmailAttemptsSince counts dispatch attempts recorded after t.
func (s *ActivityLogService) CountEmailAttemptsSince(t time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.ActivityLog{}).
		Where("action = ? AND created_at >= ?", ActionEmailAttempt, t).
		Count(&count).Error
	return count, err
}

// PruneOlderThan removes entries past the retention window. Returns the
// number of rows removed.
func (s *ActivityLogService) PruneOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	res := s.db.Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	return res.RowsAffected, res.Error
}
