package repository

import (
	"github.com/yukikurage/portfolio-api/internal/database"
	"github.com/yukikurage/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	query := r.db
	for _, association := range preload {
		query = query.Preload(association)
	}

	var project models.Project
	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByName finds a project by exact name with optional preloading
func (r *GormProjectRepository) FindByName(name string, preload ...string) (*models.Project, error) {
	query := r.db
	for _, association := range preload {
		query = query.Preload(association)
	}

	var project models.Project
	if err := query.Where("name = ?", name).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListActive lists active projects with relations, newest project date first
func (r *GormProjectRepository) ListActive() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("Category").
		Preload("Language").
		Scopes(database.ActiveOnly, database.ByProjectDateDesc).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update persists all fields of a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete permanently removes a project
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// CountByLanguageID counts projects referencing a language
func (r *GormProjectRepository) CountByLanguageID(languageID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("language_id = ?", languageID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
