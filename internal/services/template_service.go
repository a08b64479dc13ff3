package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/models"
)

// TemplateService manages the stored email templates.
type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

func (s *TemplateService) List() ([]models.EmailTemplate, error) {
	var list []models.EmailTemplate
	if err := s.db.Order("name").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *TemplateService) Get(id string) (*models.EmailTemplate, error) {
	var t models.EmailTemplate
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TemplateService) Create(t *models.EmailTemplate) error {
	return s.db.Create(t).Error
}

func (s *TemplateService) Update(t *models.EmailTemplate) error {
	return s.db.Save(t).Error
}

func (s *TemplateService) Delete(id string) error {
	return s.db.Delete(&models.EmailTemplate{}, "id = ?", id).Error
}

// FindActive returns the active template with the given name, or nil when no
// such template exists. The dispatcher substitutes its built-in default then.
func (s *TemplateService) FindActive(name string) (*models.EmailTemplate, error) {
	var t models.EmailTemplate
	err := s.db.Where("name = ? AND is_active = ?", name, true).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CountActive reports how many templates are currently active.
func (s *TemplateService) CountActive() (int64, error) {
	var count int64
	err := s.db.Model(&models.EmailTemplate{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
