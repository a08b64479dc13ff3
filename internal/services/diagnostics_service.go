package services

import (
	"fmt"
	"time"
)

// Diagnosis is a point-in-time snapshot of the email subsystem. Every call
// re-reads all sources; nothing is cached.
type Diagnosis struct {
	SMTPConfigured       bool     `json:"smtp_configured"`
	SMTPHost             string   `json:"smtp_host"`
	SMTPUser             string   `json:"smtp_user"`
	SMTPHasPassword      bool     `json:"smtp_has_password"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	AdminEmails          []string `json:"admin_emails"`
	AdminEmailsCount     int      `json:"admin_emails_count"`
	ActiveTemplatesCount int64    `json:"active_templates_count"`
	RecentEmailActivity  int64    `json:"recent_email_activity"`
	DatabaseAccessible   bool     `json:"database_accessible"`
}

// TemplateCounter reports how many templates are active.
type TemplateCounter interface {
	CountActive() (int64, error)
}

// AttemptCounter counts dispatch attempts recorded after a point in time.
type AttemptCounter interface {
	CountEmailAttemptsSince(t time.Time) (int64, error)
}

// DiagnosticsService self-reports the health of the notification pipeline.
type DiagnosticsService struct {
	settings  SettingsReader
	templates TemplateCounter
	attempts  AttemptCounter
}

func NewDiagnosticsService(settings SettingsReader, templates TemplateCounter, attempts AttemptCounter) *DiagnosticsService {
	return &DiagnosticsService{settings: settings, templates: templates, attempts: attempts}
}

// Diagnose aggregates SMTP configuration presence, notification settings,
// template counts and recent dispatch activity. Read-only, side-effect free.
func (s *DiagnosticsService) Diagnose() (Diagnosis, error) {
	smtp, err := s.settings.SMTPSettings()
	if err != nil {
		return Diagnosis{}, fmt.Errorf("read smtp settings: %w", err)
	}

	email, err := s.settings.EmailSettings()
	if err != nil {
		return Diagnosis{}, fmt.Errorf("read email settings: %w", err)
	}

	activeTemplates, err := s.templates.CountActive()
	if err != nil {
		return Diagnosis{}, fmt.Errorf("count active templates: %w", err)
	}

	recentAttempts, err := s.attempts.CountEmailAttemptsSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		return Diagnosis{}, fmt.Errorf("count recent email activity: %w", err)
	}

	return Diagnosis{
		SMTPConfigured:       smtp.Complete(),
		SMTPHost:             smtp.Host,
		SMTPUser:             smtp.User,
		SMTPHasPassword:      smtp.Pass != "",
		NotificationsEnabled: email.NotificationsEnabled,
		AdminEmails:          email.AdminEmails,
		AdminEmailsCount:     len(email.AdminEmails),
		ActiveTemplatesCount: activeTemplates,
		RecentEmailActivity:  recentAttempts,
		DatabaseAccessible:   true,
	}, nil
}
