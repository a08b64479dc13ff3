package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/mail"
	"github.com/grodno-ai/club-backend/internal/models"
)

// Setting keys for the email subsystem. Each key owns one row.
const (
	SettingNotificationsEnabled = "notifications_enabled"
	SettingAdminEmails          = "admin_emails"
	SettingSMTP                 = "smtp_settings"
	SettingAlertURL             = "alert_url"
)

// FallbackAdminEmail receives notifications when no recipient list is saved.
const FallbackAdminEmail = "admin@grodno.ai"

// EmailSettings is the notification toggle plus the admin recipient list.
type EmailSettings struct {
	NotificationsEnabled bool     `json:"notifications_enabled"`
	AdminEmails          []string `json:"admin_emails"`
}

// SettingsService reads and writes email-related settings rows. A missing key
// is a documented default, never an error.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// EmailSettings returns the notification settings, falling back to
// notifications enabled and the built-in admin address.
func (s *SettingsService) EmailSettings() (EmailSettings, error) {
	settings := EmailSettings{
		NotificationsEnabled: true,
		AdminEmails:          []string{FallbackAdminEmail},
	}

	if raw, ok, err := s.get(SettingNotificationsEnabled); err != nil {
		return EmailSettings{}, err
	} else if ok {
		var enabled bool
		if err := json.Unmarshal([]byte(raw), &enabled); err == nil {
			settings.NotificationsEnabled = enabled
		}
	}

	if raw, ok, err := s.get(SettingAdminEmails); err != nil {
		return EmailSettings{}, err
	} else if ok {
		var emails []string
		if err := json.Unmarshal([]byte(raw), &emails); err == nil && len(emails) > 0 {
			settings.AdminEmails = emails
		}
	}

	return settings, nil
}

// SaveEmailSettings persists the toggle and recipient list. Last write wins;
// concurrent admin sessions are not reconciled.
func (s *SettingsService) SaveEmailSettings(settings EmailSettings) error {
	if err := s.put(SettingNotificationsEnabled, "email", settings.NotificationsEnabled); err != nil {
		return err
	}
	return s.put(SettingAdminEmails, "email", settings.AdminEmails)
}

// SMTPSettings returns the stored SMTP connection parameters, zero-valued
// when never configured.
func (s *SettingsService) SMTPSettings() (mail.SMTPSettings, error) {
	var smtp mail.SMTPSettings

	raw, ok, err := s.get(SettingSMTP)
	if err != nil {
		return mail.SMTPSettings{}, err
	}
	if !ok {
		return smtp, nil
	}

	if err := json.Unmarshal([]byte(raw), &smtp); err != nil {
		return mail.SMTPSettings{}, fmt.Errorf("decode smtp settings: %w", err)
	}
	return smtp, nil
}

// SaveSMTPSettings persists the SMTP connection parameters.
func (s *SettingsService) SaveSMTPSettings(smtp mail.SMTPSettings) error {
	return s.put(SettingSMTP, "email", smtp)
}

// AlertURL returns the optional shoutrrr URL for the secondary alert channel.
func (s *SettingsService) AlertURL() (string, error) {
	raw, ok, err := s.get(SettingAlertURL)
	if err != nil || !ok {
		return "", err
	}

	var url string
	if err := json.Unmarshal([]byte(raw), &url); err != nil {
		return "", nil
	}
	return url, nil
}

// SaveAlertURL persists the shoutrrr alert URL. Empty disables the channel.
func (s *SettingsService) SaveAlertURL(url string) error {
	return s.put(SettingAlertURL, "email", url)
}

func (s *SettingsService) get(key string) (string, bool, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read setting %s: %w", key, err)
	}
	return setting.Value, true, nil
}

func (s *SettingsService) put(key, category string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}

	setting := models.Setting{Key: key, Value: string(raw), Category: category}
	if err := s.db.Where(models.Setting{Key: key}).Assign(setting).FirstOrCreate(&setting).Error; err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}
