package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"github.com/yukikurage/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactFieldsRequired is returned when any of the four
	// required fields is absent or empty.
	ErrContactFieldsRequired = errors.New("name, email, subject and message are required")
	ErrInvalidEmail          = errors.New("invalid email format")
)

// ContactService handles contact message business logic.
type ContactService struct {
	contacts repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// List returns active contact messages, newest first.
func (s *ContactService) List() ([]models.Contact, error) {
	return s.contacts.ListActive()
}

// Get returns a contact message by ID regardless of its active flag.
func (s *ContactService) Get(id uint64) (*models.Contact, error) {
	contact, err := s.contacts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return contact, nil
}

// CreateContactInput holds the fields for a new contact message.
type CreateContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Create validates the fields and the email shape, then stores the
// message as active.
func (s *ContactService) Create(input CreateContactInput) (*models.Contact, error) {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return nil, ErrContactFieldsRequired
	}
	if !utils.IsValidEmail(input.Email) {
		return nil, ErrInvalidEmail
	}

	contact := &models.Contact{
		Name:     input.Name,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		IsActive: true,
	}
	if err := s.contacts.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// UpdateContactInput holds the fields for a contact update, with the
// usual presence semantics: empty strings keep the stored value.
type UpdateContactInput struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	IsActive *bool
}

// Update merges the input into the stored contact. The email shape is
// re-checked only when a new, different email is supplied.
func (s *ContactService) Update(id uint64, input UpdateContactInput) (*models.Contact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != contact.Email {
		if !utils.IsValidEmail(input.Email) {
			return nil, ErrInvalidEmail
		}
		contact.Email = input.Email
	}
	if input.Name != "" {
		contact.Name = input.Name
	}
	if input.Subject != "" {
		contact.Subject = input.Subject
	}
	if input.Message != "" {
		contact.Message = input.Message
	}
	if input.IsActive != nil {
		contact.IsActive = *input.IsActive
	}

	if err := s.contacts.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// SoftDelete marks a contact message inactive.
func (s *ContactService) SoftDelete(id uint64) error {
	contact, err := s.Get(id)
	if err != nil {
		return err
	}

	contact.IsActive = false
	if err := s.contacts.Update(contact); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// HardDelete permanently removes a contact message.
func (s *ContactService) HardDelete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.contacts.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
