package services

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/aqualims/aqualims/internal/models"
	"github.com/aqualims/aqualims/internal/security"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tempPasswordLength = 12

var (
	ErrUserInputInvalid = errors.New("username and a valid email are required")
	ErrUserRoleInvalid  = errors.New("invalid role")
	ErrUserExists       = errors.New("username or email already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserStoreFailed  = errors.New("user store operation failed")
)

type AdminUserRepository interface {
	List() ([]models.User, error)
	FindByID(userID string) (models.User, bool, error)
	ExistsByUsernameOrEmail(username string, email string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

// UserAdminService covers the account management surface: listing, creation
// with the default credential, activation toggling and password resets.
// Accounts are never deleted, only deactivated.
type UserAdminService struct {
	users AdminUserRepository
}

func NewUserAdminService(users AdminUserRepository) *UserAdminService {
	return &UserAdminService{users: users}
}

func (service *UserAdminService) ListUsers() ([]models.User, error) {
	users, err := service.users.List()
	if err != nil {
		return nil, ErrUserStoreFailed
	}
	return users, nil
}

func (service *UserAdminService) CreateUser(username string, email string, role string, now time.Time) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" {
		return models.User{}, ErrUserInputInvalid
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, ErrUserInputInvalid
	}
	if !models.ValidRole(role) {
		return models.User{}, ErrUserRoleInvalid
	}

	exists, err := service.users.ExistsByUsernameOrEmail(strings.ToLower(username), email)
	if err != nil {
		return models.User{}, ErrUserStoreFailed
	}
	if exists {
		return models.User{}, ErrUserExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(models.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrUserStoreFailed
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Role:         role,
		IsActive:     true,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrUserExists
	}
	return user, nil
}

func (service *UserAdminService) ToggleActive(userID string) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserStoreFailed
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}

	user.IsActive = !user.IsActive
	if err := service.users.Save(&user); err != nil {
		return models.User{}, ErrUserStoreFailed
	}
	return user, nil
}

// ResetPassword replaces a user's credential with a generated temporary one
// and returns the plaintext exactly once for the admin to hand over.
func (service *UserAdminService) ResetPassword(userID string) (models.User, string, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, "", ErrUserStoreFailed
	}
	if !found {
		return models.User{}, "", ErrUserNotFound
	}

	tempPassword, err := security.TempPassword(tempPasswordLength)
	if err != nil {
		return models.User{}, "", ErrUserStoreFailed
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", ErrUserStoreFailed
	}

	user.PasswordHash = string(passwordHash)
	if err := service.users.Save(&user); err != nil {
		return models.User{}, "", ErrUserStoreFailed
	}
	return user, tempPassword, nil
}
