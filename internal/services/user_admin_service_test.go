package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aqualims/aqualims/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type adminUserRepositoryStub struct {
	users   []models.User
	saveErr error
}

func (stub *adminUserRepositoryStub) List() ([]models.User, error) {
	listed := make([]models.User, len(stub.users))
	copy(listed, stub.users)
	return listed, nil
}

func (stub *adminUserRepositoryStub) FindByID(userID string) (models.User, bool, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (stub *adminUserRepositoryStub) ExistsByUsernameOrEmail(username string, email string) (bool, error) {
	for _, user := range stub.users {
		if strings.EqualFold(user.Username, username) || strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (stub *adminUserRepositoryStub) Create(user *models.User) error {
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *adminUserRepositoryStub) Save(user *models.User) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	for index := range stub.users {
		if stub.users[index].ID == user.ID {
			stub.users[index] = *user
			return nil
		}
	}
	stub.users = append(stub.users, *user)
	return nil
}

func TestCreateUserAssignsDefaultPassword(t *testing.T) {
	stub := &adminUserRepositoryStub{}
	service := NewUserAdminService(stub)

	user, err := service.CreateUser("tech3", "Tech3@AquaLIMS.com", models.RoleUser, time.Now())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated id")
	}
	if !user.IsActive {
		t.Fatal("new accounts must start active")
	}
	if user.Email != "tech3@aqualims.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(models.DefaultPassword)); err != nil {
		t.Fatal("expected default password to verify against stored hash")
	}
}

func TestCreateUserValidation(t *testing.T) {
	service := NewUserAdminService(&adminUserRepositoryStub{})

	if _, err := service.CreateUser("", "tech@aqualims.com", models.RoleUser, time.Now()); !errors.Is(err, ErrUserInputInvalid) {
		t.Fatalf("expected ErrUserInputInvalid for empty username, got %v", err)
	}
	if _, err := service.CreateUser("tech", "not-an-email", models.RoleUser, time.Now()); !errors.Is(err, ErrUserInputInvalid) {
		t.Fatalf("expected ErrUserInputInvalid for malformed email, got %v", err)
	}
	if _, err := service.CreateUser("tech", "tech@aqualims.com", "SUPERVISOR", time.Now()); !errors.Is(err, ErrUserRoleInvalid) {
		t.Fatalf("expected ErrUserRoleInvalid, got %v", err)
	}
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	stub := &adminUserRepositoryStub{users: []models.User{
		{ID: "user-1", Username: "tech1", Email: "tech1@aqualims.com"},
	}}
	service := NewUserAdminService(stub)

	if _, err := service.CreateUser("TECH1", "other@aqualims.com", models.RoleUser, time.Now()); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := service.CreateUser("other", "tech1@aqualims.com", models.RoleUser, time.Now()); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestToggleActiveFlipsFlag(t *testing.T) {
	stub := &adminUserRepositoryStub{users: []models.User{
		{ID: "user-1", Username: "tech1", IsActive: true},
	}}
	service := NewUserAdminService(stub)

	user, err := service.ToggleActive("user-1")
	if err != nil {
		t.Fatalf("toggle active: %v", err)
	}
	if user.IsActive {
		t.Fatal("expected account to be deactivated")
	}

	user, err = service.ToggleActive("user-1")
	if err != nil {
		t.Fatalf("toggle active again: %v", err)
	}
	if !user.IsActive {
		t.Fatal("expected account to be reactivated")
	}

	if _, err := service.ToggleActive("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetPasswordIssuesWorkingTemporaryCredential(t *testing.T) {
	originalHash, err := bcrypt.GenerateFromPassword([]byte(models.DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash original password: %v", err)
	}
	stub := &adminUserRepositoryStub{users: []models.User{
		{ID: "user-1", Username: "tech1", IsActive: true, PasswordHash: string(originalHash)},
	}}
	service := NewUserAdminService(stub)

	user, tempPassword, err := service.ResetPassword("user-1")
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if tempPassword == "" {
		t.Fatal("expected a temporary password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tempPassword)); err != nil {
		t.Fatal("temporary password must verify against the new hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(models.DefaultPassword)) == nil {
		t.Fatal("old password must stop working after reset")
	}
}
