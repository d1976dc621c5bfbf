package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidRefs is returned on create when either foreign key does
	// not resolve; the caller cannot tell which one failed.
	ErrInvalidRefs = errors.New("invalid category_id or tech_id")
	// ErrInvalidCategoryRef and ErrInvalidLanguageRef are the per-field
	// variants used on update, where each key is validated on its own.
	ErrInvalidCategoryRef = errors.New("invalid category_id")
	ErrInvalidLanguageRef = errors.New("invalid language_id")
)

// projectRelations are the associations loaded for detail responses.
var projectRelations = []string{"Category", "Language"}

// MissingFieldsError lists every required create field that was absent
// or empty, in request order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// ProjectService handles project business logic, including the
// cross-entity reference checks against categories and languages.
type ProjectService struct {
	projects   repository.ProjectRepository
	categories repository.CategoryRepository
	languages  repository.LanguageRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	projects repository.ProjectRepository,
	categories repository.CategoryRepository,
	languages repository.LanguageRepository,
) *ProjectService {
	return &ProjectService{
		projects:   projects,
		categories: categories,
		languages:  languages,
	}
}

// List returns active projects with their category and language,
// newest project date first.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projects.ListActive()
}

// Get returns a project with relations regardless of its active flag.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projects.FindByID(id, projectRelations...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetByName returns a project with relations by exact name match.
func (s *ProjectService) GetByName(name string) (*models.Project, error) {
	project, err := s.projects.FindByName(name, projectRelations...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProjectInput holds the fields for a new project. LanguageID
// arrives on the wire as tech_id.
type CreateProjectInput struct {
	Name        string
	Description string
	URL         string
	Client      string
	ProjectDate time.Time
	ImageURL    string
	CategoryID  uint64
	LanguageID  uint64
}

func (in CreateProjectInput) missingFields() []string {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.URL == "" {
		missing = append(missing, "url")
	}
	if in.Client == "" {
		missing = append(missing, "client")
	}
	if in.ProjectDate.IsZero() {
		missing = append(missing, "project_date")
	}
	if in.ImageURL == "" {
		missing = append(missing, "image_url")
	}
	if in.CategoryID == 0 {
		missing = append(missing, "category_id")
	}
	if in.LanguageID == 0 {
		missing = append(missing, "tech_id")
	}
	return missing
}

// Create validates that every field is present and that both foreign
// keys resolve, then creates the project and returns it with its
// relations loaded.
func (s *ProjectService) Create(input CreateProjectInput) (*models.Project, error) {
	if missing := input.missingFields(); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if _, err := s.categories.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefs
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if _, err := s.languages.FindByID(input.LanguageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefs
		}
		return nil, fmt.Errorf("failed to check language: %w", err)
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Client:      input.Client,
		ProjectDate: input.ProjectDate,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		LanguageID:  input.LanguageID,
		IsActive:    true,
	}
	if err := s.projects.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	created, err := s.projects.FindByID(project.ID, projectRelations...)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return created, nil
}

// UpdateProjectInput holds the fields for a project update. Zero values
// mean "keep the stored value": an explicit empty string or 0 does not
// overwrite, which mirrors the original API's merge semantics. IsActive
// is a pointer so only a present key flips it.
type UpdateProjectInput struct {
	Name        string
	Description string
	URL         string
	Client      string
	ProjectDate time.Time
	ImageURL    string
	CategoryID  uint64
	LanguageID  uint64
	IsActive    *bool
}

// Update re-validates any supplied foreign key, merges the input into
// the stored project, and returns the result with relations loaded.
func (s *ProjectService) Update(id uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.CategoryID != 0 {
		if _, err := s.categories.FindByID(input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCategoryRef
			}
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		project.CategoryID = input.CategoryID
	}
	if input.LanguageID != 0 {
		if _, err := s.languages.FindByID(input.LanguageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidLanguageRef
			}
			return nil, fmt.Errorf("failed to check language: %w", err)
		}
		project.LanguageID = input.LanguageID
	}

	if input.Name != "" {
		project.Name = input.Name
	}
	if input.Description != "" {
		project.Description = input.Description
	}
	if input.URL != "" {
		project.URL = input.URL
	}
	if input.Client != "" {
		project.Client = input.Client
	}
	if !input.ProjectDate.IsZero() {
		project.ProjectDate = input.ProjectDate
	}
	if input.ImageURL != "" {
		project.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}

	if err := s.projects.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	updated, err := s.projects.FindByID(id, projectRelations...)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return updated, nil
}

// SoftDelete marks a project inactive.
func (s *ProjectService) SoftDelete(id uint64) error {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	project.IsActive = false
	if err := s.projects.Update(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// HardDelete permanently removes a project.
func (s *ProjectService) HardDelete(id uint64) error {
	if _, err := s.projects.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projects.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
