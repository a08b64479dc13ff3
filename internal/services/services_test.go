package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/grodno-ai/club-backend/internal/mail"
	"github.com/grodno-ai/club-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.TeamMember{},
		&models.Registration{},
		&models.User{},
		&models.Setting{},
		&models.EmailTemplate{},
		&models.ActivityLog{},
	))

	return db
}

// fakeTransport records every delivery and can be told to fail for specific
// recipients.
type fakeTransport struct {
	mu      sync.Mutex
	calls   []mail.Message
	failFor map[string]string
}

func (f *fakeTransport) Send(ctx context.Context, msg mail.Message, smtp mail.SMTPSettings) (mail.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, msg)
	if detail, ok := f.failFor[msg.Recipient]; ok {
		return mail.Result{Success: false, Detail: detail}, nil
	}
	return mail.Result{Success: true}, nil
}

func (f *fakeTransport) sent() []mail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mail.Message, len(f.calls))
	copy(out, f.calls)
	return out
}
