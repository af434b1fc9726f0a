package api

import (
	"github.com/aqualims/aqualims/internal/models"
	"github.com/aqualims/aqualims/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if !services.RoleSatisfies(user.Role, models.RoleAdmin) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	return c.Next()
}
