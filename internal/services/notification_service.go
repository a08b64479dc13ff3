package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/containrrr/shoutrrr"

	"github.com/grodno-ai/club-backend/internal/logger"
	"github.com/grodno-ai/club-backend/internal/mail"
	"github.com/grodno-ai/club-backend/internal/metrics"
	"github.com/grodno-ai/club-backend/internal/models"
)

// TemplateNewRegistration is the well-known template name looked up when a
// registration event is dispatched.
const TemplateNewRegistration = "new_registration"

const attemptMethod = "dispatcher"

// Built-in fallback used when no active new_registration template exists.
const (
	defaultRegistrationSubject = "New course registration - AI Club"
	defaultRegistrationBody    = `A new course registration has arrived!

Details:
Name: {{name}}
Email: {{email}}
Phone: {{phone}}
Telegram: {{telegram}}
Course: {{courseName}}
Submitted: {{createdAt}}

Open the admin panel to review all registrations.`
)

var defaultRegistrationVariables = []string{"name", "email", "phone", "telegram", "courseName", "createdAt"}

// RegistrationEvent carries the fields a registration template can reference.
type RegistrationEvent struct {
	Name       string
	Email      string
	Phone      string
	Telegram   string
	CourseName string
	CreatedAt  time.Time
}

// SettingsReader is the settings access the dispatcher and diagnostics need.
// Injected rather than read from globals so both are testable with fixtures.
type SettingsReader interface {
	EmailSettings() (EmailSettings, error)
	SMTPSettings() (mail.SMTPSettings, error)
	AlertURL() (string, error)
}

// TemplateFinder resolves the active template for an event type.
type TemplateFinder interface {
	FindActive(name string) (*models.EmailTemplate, error)
}

// AttemptLogger records one entry per delivery attempt, best-effort.
type AttemptLogger interface {
	RecordEmailAttempt(recipient, subject, status, method string)
}

// NotificationService renders a template for an event and fans the message
// out to every admin recipient independently.
type NotificationService struct {
	settings  SettingsReader
	templates TemplateFinder
	attempts  AttemptLogger
	transport mail.Transport
}

func NewNotificationService(settings SettingsReader, templates TemplateFinder, attempts AttemptLogger, transport mail.Transport) *NotificationService {
	return &NotificationService{
		settings:  settings,
		templates: templates,
		attempts:  attempts,
		transport: transport,
	}
}

// NotifyNewRegistration notifies every configured admin about a new
// registration. All recipients are attempted regardless of individual
// failures; the returned error aggregates what went wrong, if anything.
func (s *NotificationService) NotifyNewRegistration(ctx context.Context, ev RegistrationEvent) error {
	settings, err := s.settings.EmailSettings()
	if err != nil {
		// Missing settings must not kill the notification; fall back.
		logger.Log().WithError(err).Warn("failed to load email settings, using defaults")
		settings = EmailSettings{
			NotificationsEnabled: true,
			AdminEmails:          []string{FallbackAdminEmail},
		}
	}

	if !settings.NotificationsEnabled {
		logger.Log().Info("admin notifications are disabled, skipping dispatch")
		return nil
	}

	recipients := settings.AdminEmails
	if len(recipients) == 0 {
		recipients = []string{FallbackAdminEmail}
	}

	subject, body, declared := s.registrationTemplate()

	createdAt := ev.CreatedAt.Format("02.01.2006 15:04")
	values := map[string]string{
		"name":        ev.Name,
		"phone":       ev.Phone,
		"telegram":    ev.Telegram,
		"courseName":  ev.CourseName,
		"course_name": ev.CourseName,
		"createdAt":   createdAt,
		"created_at":  createdAt,
	}
	if ev.Email != "" {
		values["email"] = ev.Email
	}

	// Rendered once per event; the recipient address is a delivery
	// parameter, not a template variable.
	rendered := mail.Render(body, values, declared)

	err = s.broadcast(ctx, recipients, subject, rendered)

	s.alert("New course registration", fmt.Sprintf("%s signed up for %s", ev.Name, ev.CourseName))

	return err
}

// SendTest delivers a test message to a single recipient so administrators
// can verify the SMTP configuration end to end.
func (s *NotificationService) SendTest(ctx context.Context, recipient string) error {
	subject := "AI Club email system test"
	body := fmt.Sprintf("This is a test message from the AI Club admin panel.\nSent at %s.",
		time.Now().UTC().Format(time.RFC3339))

	return s.broadcast(ctx, []string{recipient}, subject, body)
}

// broadcast sends one rendered body to every recipient concurrently. Exactly
// one attempt-log entry is produced per recipient, success or failure.
// Only host and user are checked here; a missing password is the delivery
// function's verdict, reported back per recipient.
func (s *NotificationService) broadcast(ctx context.Context, recipients []string, subject, body string) error {
	smtp, err := s.settings.SMTPSettings()
	if err != nil || smtp.Host == "" || smtp.User == "" {
		reason := "SMTP not configured"
		if err != nil {
			reason = fmt.Sprintf("SMTP settings unavailable: %v", err)
		}
		for _, recipient := range recipients {
			s.attempts.RecordEmailAttempt(recipient, subject, reason, attemptMethod)
			metrics.IncEmailFailed()
		}
		return fmt.Errorf("SMTP settings are not configured, please configure SMTP in the admin panel")
	}

	html := mail.ToHTML(body)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)

	for _, recipient := range recipients {
		wg.Add(1)
		go func(recipient string) {
			defer wg.Done()

			msg := mail.Message{Recipient: recipient, Subject: subject, HTML: html}
			res, err := s.transport.Send(ctx, msg, smtp)

			status := "Sent successfully"
			switch {
			case err != nil:
				status = fmt.Sprintf("Failed: %v", err)
			case !res.Success:
				status = fmt.Sprintf("Failed: %s", res.Detail)
			}

			s.attempts.RecordEmailAttempt(recipient, subject, status, attemptMethod)

			if err != nil || !res.Success {
				metrics.IncEmailFailed()
				mu.Lock()
				failures = append(failures, recipient)
				mu.Unlock()
				logger.WithFields(map[string]interface{}{"recipient": recipient}).
					Warn("email delivery attempt failed")
				return
			}
			metrics.IncEmailSent()
		}(recipient)
	}
	wg.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("failed to notify %d of %d recipients", len(failures), len(recipients))
	}
	return nil
}

// registrationTemplate loads the active new_registration template, falling
// back to the built-in default subject and body.
func (s *NotificationService) registrationTemplate() (subject, body string, declared []string) {
	tmpl, err := s.templates.FindActive(TemplateNewRegistration)
	if err != nil {
		logger.Log().WithError(err).Warn("failed to load registration template, using default")
	}
	if tmpl == nil {
		return defaultRegistrationSubject, defaultRegistrationBody, defaultRegistrationVariables
	}

	subject = tmpl.Subject
	if subject == "" {
		subject = defaultRegistrationSubject
	}
	body = tmpl.Body
	if body == "" {
		body = defaultRegistrationBody
	}
	declared = tmpl.Variables
	if len(declared) == 0 {
		declared = defaultRegistrationVariables
	}
	return subject, body, declared
}

// alert pings the optional shoutrrr channel. Best-effort only.
func (s *NotificationService) alert(title, message string) {
	url, err := s.settings.AlertURL()
	if err != nil || url == "" {
		return
	}

	go func() {
		if err := shoutrrr.Send(url, fmt.Sprintf("%s\n\n%s", title, message)); err != nil {
			logger.Log().WithError(err).Warn("failed to send alert notification")
		}
	}()
}
