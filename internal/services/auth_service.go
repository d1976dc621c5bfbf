package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"github.com/yukikurage/portfolio-api/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrMissingCredentials is returned when the name or password is absent.
	ErrMissingCredentials = errors.New("name and password are required")
	// ErrInvalidCredentials is returned for an unknown name and for a
	// wrong password alike, so callers cannot probe which names exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	accounts  repository.AccountRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts repository.AccountRepository, jwtSecret string) *AuthService {
	return &AuthService{
		accounts:  accounts,
		jwtSecret: jwtSecret,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Name     string
	Password string
}

// LoginResult is a successful login: the signed token and the account
// it was issued to.
type LoginResult struct {
	Token   string
	Account *models.Account
}

// Login checks the supplied secret against the stored bcrypt hash and,
// on match, issues a token valid for 24 hours.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	if input.Name == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}

	account, err := s.accounts.FindByName(input.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signed, err := token.Generate(s.jwtSecret, account.ID, account.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{Token: signed, Account: account}, nil
}
