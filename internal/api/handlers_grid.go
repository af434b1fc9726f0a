package api

import (
	"errors"
	"time"

	"github.com/aqualims/aqualims/internal/services"
	"github.com/gofiber/fiber/v2"
)

type saveGridRequest struct {
	Cells []services.GridCell `json:"cells"`
}

type gridResponse struct {
	Date    string              `json:"date"`
	CanEdit bool                `json:"canEdit"`
	Cells   []services.GridCell `json:"cells"`
}

type saveGridResponse struct {
	Date       string              `json:"date"`
	SavedCount int                 `json:"savedCount"`
	Cells      []services.GridCell `json:"cells"`
}

func (handler *Handler) GetGrid(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date := c.Params("date")
	cells, err := handler.gridService.LoadGrid(date)
	if err != nil {
		if errors.Is(err, services.ErrGridDateInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load grid")
	}

	canEdit, err := handler.gridService.CanEdit(user, date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	return c.JSON(gridResponse{Date: date, CanEdit: canEdit, Cells: cells})
}

func (handler *Handler) SaveGrid(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := saveGridRequest{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date := c.Params("date")
	savedCount, cells, err := handler.gridService.SaveAll(user, date, input.Cells, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGridDateInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		case errors.Is(err, services.ErrGridReadOnly):
			return apiError(c, fiber.StatusForbidden, "grid is read-only for past dates")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save grid")
		}
	}

	return c.JSON(saveGridResponse{Date: date, SavedCount: savedCount, Cells: cells})
}
