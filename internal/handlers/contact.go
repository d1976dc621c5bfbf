package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-api/internal/response"
	"github.com/yukikurage/portfolio-api/internal/services"
)

// ContactHandler coordinates contact-message HTTP handlers. Every
// contact route sits behind the auth gate, including creation.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// List returns active contact messages, newest first.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch contacts", err)
		return
	}
	response.OK(c, contacts)
}

// Get returns a contact message by ID, active or not.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Contact not found")
		return
	}

	contact, err := h.contactService.Get(id)
	switch {
	case err == nil:
		response.OK(c, contact)
	case errors.Is(err, services.ErrContactNotFound):
		response.NotFound(c, "Contact not found")
	default:
		response.InternalError(c, "Failed to fetch contact", err)
	}
}

// Create stores a contact message after validating all four fields and
// the email shape.
func (h *ContactHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(services.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	switch {
	case err == nil:
		response.Created(c, "Contact message created successfully", contact)
	case errors.Is(err, services.ErrContactFieldsRequired):
		response.BadRequest(c, "All fields are required (name, email, subject, message)")
	case errors.Is(err, services.ErrInvalidEmail):
		response.BadRequest(c, "Invalid email format")
	default:
		response.InternalError(c, "Failed to create contact", err)
	}
}

// Update merges the request body into a contact message; a changed
// email is re-validated.
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Contact not found")
		return
	}

	type UpdateRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Subject  string `json:"subject"`
		Message  string `json:"message"`
		IsActive *bool  `json:"is_active"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.Update(id, services.UpdateContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		IsActive: req.IsActive,
	})
	switch {
	case err == nil:
		response.OKWithData(c, "Contact updated successfully", contact)
	case errors.Is(err, services.ErrContactNotFound):
		response.NotFound(c, "Contact not found")
	case errors.Is(err, services.ErrInvalidEmail):
		response.BadRequest(c, "Invalid email format")
	default:
		response.InternalError(c, "Failed to update contact", err)
	}
}

// Delete soft-deletes a contact message.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Contact not found")
		return
	}

	err := h.contactService.SoftDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Contact deleted successfully")
	case errors.Is(err, services.ErrContactNotFound):
		response.NotFound(c, "Contact not found")
	default:
		response.InternalError(c, "Failed to delete contact", err)
	}
}

// HardDelete permanently removes a contact message.
func (h *ContactHandler) HardDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Contact not found")
		return
	}

	err := h.contactService.HardDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Contact permanently deleted")
	case errors.Is(err, services.ErrContactNotFound):
		response.NotFound(c, "Contact not found")
	default:
		response.InternalError(c, "Failed to permanently delete contact", err)
	}
}
