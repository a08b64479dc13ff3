package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	emailSentTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "club_email_attempts_sent_total",
		Help: "Total number of email delivery attempts that succeeded",
	})
	emailFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "club_email_attempts_failed_total",
		Help: "Total number of email delivery attempts that failed",
	})
	registrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "club_registrations_total",
		Help: "Total number of course registrations submitted",
	})
)

// Register registers Prometheus collectors. Call once at startup.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(emailSentTotal, emailFailedTotal, registrationsTotal)
}

// IncEmailSent increments the successful delivery attempts counter.
func IncEmailSent() { emailSentTotal.Inc() }

// IncEmailFailed increments the failed delivery attempts counter.
func IncEmailFailed() { emailFailedTotal.Inc() }

// IncRegistration increments the submitted registrations counter.
func IncRegistration() { registrationsTotal.Inc() }
