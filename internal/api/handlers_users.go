package api

import (
	"errors"
	"time"

	"github.com/aqualims/aqualims/internal/services"
	"github.com/gofiber/fiber/v2"
)

type createUserRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Role     string `json:"role" form:"role"`
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.userAdminService.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(users)
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input := createUserRequest{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.userAdminService.CreateUser(input.Username, input.Email, input.Role, time.Now().In(handler.location))
	if err != nil {
		return respondUserError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) ToggleUserActive(c *fiber.Ctx) error {
	user, err := handler.userAdminService.ToggleActive(c.Params("id"))
	if err != nil {
		return respondUserError(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) ResetUserPassword(c *fiber.Ctx) error {
	user, tempPassword, err := handler.userAdminService.ResetPassword(c.Params("id"))
	if err != nil {
		return respondUserError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":         user,
		"tempPassword": tempPassword,
	})
}

func respondUserError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrUserInputInvalid),
		errors.Is(err, services.ErrUserRoleInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserExists):
		return apiError(c, fiber.StatusConflict, "username or email already exists")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save user")
	}
}
