package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// DefaultPassword is assigned to seeded and newly created accounts until the
// user changes it.
const DefaultPassword = "password123"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Role         string    `gorm:"not null;default:USER" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
