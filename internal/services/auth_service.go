package services

import (
	"errors"
	"strings"

	"github.com/aqualims/aqualims/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately generic: unknown identifier, wrong
// password and disabled account all surface the same way to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUserRepository interface {
	FindByIdentifier(identifier string) (models.User, bool, error)
	FindByID(userID string) (models.User, bool, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate resolves a username or email plus password to an active user.
func (service *AuthService) Authenticate(identifier string, password string) (models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(identifier))
	if normalized == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, found, err := service.users.FindByIdentifier(normalized)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID string) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
