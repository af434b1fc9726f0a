package api

import (
	"errors"
	"time"

	"github.com/aqualims/aqualims/internal/db"
	"github.com/aqualims/aqualims/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		loginLimiter: newAttemptLimiter(),
	}
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.gridService = services.NewGridService(handler.repositories.Records, location)
	handler.recordService = services.NewRecordService(handler.repositories.Records, location)
	handler.userAdminService = services.NewUserAdminService(handler.repositories.Users)
	handler.exportService = services.NewExportService()
	return handler, nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
