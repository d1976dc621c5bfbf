package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrLanguageNotFound     = errors.New("language not found")
	ErrLanguageNameRequired = errors.New("language name is required")
	// ErrLanguageExists is returned when another language already has
	// the requested name. Uniqueness is a pre-check query, not a
	// storage constraint.
	ErrLanguageExists = errors.New("language name already exists")
	// ErrLanguageInUse blocks hard deletion while projects still
	// reference the language.
	ErrLanguageInUse = errors.New("language is used by projects")
)

// LanguageService handles language (tech tag) business logic.
type LanguageService struct {
	languages repository.LanguageRepository
	projects  repository.ProjectRepository
}

// NewLanguageService creates a new LanguageService.
func NewLanguageService(languages repository.LanguageRepository, projects repository.ProjectRepository) *LanguageService {
	return &LanguageService{
		languages: languages,
		projects:  projects,
	}
}

// List returns active languages, name ascending.
func (s *LanguageService) List() ([]models.Language, error) {
	return s.languages.ListActive()
}

// Get returns a language by ID regardless of its active flag.
func (s *LanguageService) Get(id uint64) (*models.Language, error) {
	language, err := s.languages.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLanguageNotFound
		}
		return nil, fmt.Errorf("failed to find language: %w", err)
	}
	return language, nil
}

// CreateLanguageInput holds the fields for a new language.
type CreateLanguageInput struct {
	Name string
}

// Create creates an active language after checking no other language
// carries the same name.
func (s *LanguageService) Create(input CreateLanguageInput) (*models.Language, error) {
	if input.Name == "" {
		return nil, ErrLanguageNameRequired
	}

	if _, err := s.languages.FindByName(input.Name); err == nil {
		return nil, ErrLanguageExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check language name: %w", err)
	}

	language := &models.Language{
		Name:     input.Name,
		IsActive: true,
	}
	if err := s.languages.Create(language); err != nil {
		return nil, fmt.Errorf("failed to create language: %w", err)
	}
	return language, nil
}

// UpdateLanguageInput holds the fields for a language update, with the
// same presence semantics as UpdateCategoryInput.
type UpdateLanguageInput struct {
	Name     string
	IsActive *bool
}

// Update merges the input into the stored language. A rename is checked
// against existing names first.
func (s *LanguageService) Update(id uint64, input UpdateLanguageInput) (*models.Language, error) {
	language, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != language.Name {
		if _, err := s.languages.FindByName(input.Name); err == nil {
			return nil, ErrLanguageExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check language name: %w", err)
		}
		language.Name = input.Name
	}
	if input.IsActive != nil {
		language.IsActive = *input.IsActive
	}

	if err := s.languages.Update(language); err != nil {
		return nil, fmt.Errorf("failed to update language: %w", err)
	}
	return language, nil
}

// SoftDelete marks a language inactive. Soft deletion is not guarded by
// the reference count; only hard deletion is.
func (s *LanguageService) SoftDelete(id uint64) error {
	language, err := s.Get(id)
	if err != nil {
		return err
	}

	language.IsActive = false
	if err := s.languages.Update(language); err != nil {
		return fmt.Errorf("failed to delete language: %w", err)
	}
	return nil
}

// HardDelete permanently removes a language unless any project still
// references it. The count and the delete are separate statements, so
// a racing project insert can slip between them; that matches the
// original behavior.
func (s *LanguageService) HardDelete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	count, err := s.projects.CountByLanguageID(id)
	if err != nil {
		return fmt.Errorf("failed to count referencing projects: %w", err)
	}
	if count > 0 {
		return ErrLanguageInUse
	}

	if err := s.languages.Delete(id); err != nil {
		return fmt.Errorf("failed to delete language: %w", err)
	}
	return nil
}
