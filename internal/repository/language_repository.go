package repository

import (
	"github.com/yukikurage/portfolio-api/internal/database"
	"github.com/yukikurage/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormLanguageRepository is a GORM implementation of LanguageRepository
type GormLanguageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository creates a new LanguageRepository
func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &GormLanguageRepository{db: db}
}

// Create creates a new language
func (r *GormLanguageRepository) Create(language *models.Language) error {
	return r.db.Create(language).Error
}

// FindByID finds a language by ID
func (r *GormLanguageRepository) FindByID(id uint64) (*models.Language, error) {
	var language models.Language
	if err := r.db.First(&language, id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

// FindByName finds a language by exact name
func (r *GormLanguageRepository) FindByName(name string) (*models.Language, error) {
	var language models.Language
	if err := r.db.Where("name = ?", name).First(&language).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

// ListActive lists active languages, name ascending
func (r *GormLanguageRepository) ListActive() ([]models.Language, error) {
	var languages []models.Language
	err := r.db.Scopes(database.ActiveOnly, database.ByNameAsc).Find(&languages).Error
	if err != nil {
		return nil, err
	}
	return languages, nil
}

// Update persists all fields of a language
func (r *GormLanguageRepository) Update(language *models.Language) error {
	return r.db.Save(language).Error
}

// Delete permanently removes a language
func (r *GormLanguageRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Language{}, id).Error
}
