package services

import (
	"time"

	"github.com/aqualims/aqualims/internal/models"
)

func IsAdminUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}

// CanEditDate reports whether a user with the given role may modify entries
// for a calendar day. Admins edit any day; everyone else is limited to today
// and future days.
func CanEditDate(role string, day time.Time, today time.Time) bool {
	if role == models.RoleAdmin {
		return true
	}
	return !day.Before(today)
}

// RoleSatisfies reports whether the held role meets a required one. The admin
// role implicitly satisfies any lesser requirement.
func RoleSatisfies(role string, required string) bool {
	if required == "" {
		return true
	}
	if role == models.RoleAdmin {
		return true
	}
	return role == required
}
