package api

import (
	"time"

	"github.com/aqualims/aqualims/internal/db"
	"github.com/aqualims/aqualims/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories     *db.Repositories
	authService      *services.AuthService
	gridService      *services.GridService
	recordService    *services.RecordService
	userAdminService *services.UserAdminService
	exportService    *services.ExportService

	loginLimiter *attemptLimiter
}

const (
	authTokenTTL = 12 * time.Hour

	loginAttemptLimit  = 8
	loginAttemptWindow = 10 * time.Minute
)
