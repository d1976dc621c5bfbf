package dto

import (
	"time"

	"github.com/yukikurage/portfolio-api/internal/models"
)

// NamedRef is the name-only projection of a related record embedded in
// project responses.
type NamedRef struct {
	Name string `json:"name"`
}

// ProjectDTO represents a project in API responses, with its category
// and language reduced to their names.
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Client      string    `json:"client"`
	ProjectDate time.Time `json:"project_date"`
	ImageURL    string    `json:"image_url"`
	CategoryID  uint64    `json:"category_id"`
	LanguageID  uint64    `json:"language_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Category    *NamedRef `json:"category,omitempty"`
	Language    *NamedRef `json:"language,omitempty"`
}

// ToProjectDTO converts a Project model to ProjectDTO. Relations are
// included only when they were preloaded.
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		URL:         project.URL,
		Client:      project.Client,
		ProjectDate: project.ProjectDate,
		ImageURL:    project.ImageURL,
		CategoryID:  project.CategoryID,
		LanguageID:  project.LanguageID,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	if project.Category.ID != 0 {
		dto.Category = &NamedRef{Name: project.Category.Name}
	}
	if project.Language.ID != 0 {
		dto.Language = &NamedRef{Name: project.Language.Name}
	}

	return dto
}

// ToProjectDTOs converts a slice of projects.
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
