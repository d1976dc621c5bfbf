package repository

import (
	"github.com/yukikurage/portfolio-api/internal/database"
	"github.com/yukikurage/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create creates a new category
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(id uint64) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListActive lists active categories, newest first
func (r *GormCategoryRepository) ListActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Scopes(database.ActiveOnly, database.NewestFirst).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Update persists all fields of a category
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete permanently removes a category
func (r *GormCategoryRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Category{}, id).Error
}
