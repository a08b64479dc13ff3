package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/models"
)

func TestTemplateService_CRUD(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	tmpl := &models.EmailTemplate{
		Name:      "new_registration",
		Subject:   "New signup",
		Body:      "Hi {{name}}",
		Variables: models.StringList{"name"},
		IsActive:  true,
	}
	require.NoError(t, svc.Create(tmpl))
	require.NotEmpty(t, tmpl.ID)

	got, err := svc.Get(tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "New signup", got.Subject)

	got.Subject = "Updated subject"
	require.NoError(t, svc.Update(got))

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Updated subject", list[0].Subject)

	require.NoError(t, svc.Delete(tmpl.ID))
	_, err = svc.Get(tmpl.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindActive_ReturnsNilWhenMissing(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	got, err := svc.FindActive("new_registration")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindActive_IgnoresInactiveTemplates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTemplateService(db)

	tmpl := &models.EmailTemplate{
		Name:    "new_registration",
		Subject: "Disabled",
		Body:    "unused",
	}
	require.NoError(t, svc.Create(tmpl))
	require.NoError(t, db.Model(tmpl).Update("is_active", false).Error)

	got, err := svc.FindActive("new_registration")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindActive_ReturnsActiveTemplate(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	require.NoError(t, svc.Create(&models.EmailTemplate{
		Name:     "new_registration",
		Subject:  "New signup",
		Body:     "Hi {{name}}",
		IsActive: true,
	}))

	got, err := svc.FindActive("new_registration")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New signup", got.Subject)
}

func TestCountActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTemplateService(db)

	require.NoError(t, svc.Create(&models.EmailTemplate{Name: "a", Subject: "s", Body: "b", IsActive: true}))
	inactive := &models.EmailTemplate{Name: "b", Subject: "s", Body: "b"}
	require.NoError(t, svc.Create(inactive))
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	count, err := svc.CountActive()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
