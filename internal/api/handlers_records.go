package api

import (
	"errors"
	"time"

	"github.com/aqualims/aqualims/internal/services"
	"github.com/gofiber/fiber/v2"
)

func recordFilterFromQuery(c *fiber.Ctx) services.RecordFilter {
	return services.RecordFilter{
		Search:      c.Query("search"),
		SamplePoint: c.Query("samplePoint"),
		Attribute:   c.Query("attribute"),
		DateFrom:    c.Query("from"),
		DateTo:      c.Query("to"),
	}
}

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	records, err := handler.recordService.ListFiltered(recordFilterFromQuery(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list records")
	}
	return c.JSON(records)
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.RecordEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, err := handler.recordService.CreateEntry(user, input, time.Now())
	if err != nil {
		return respondRecordError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpdateRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.RecordEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, err := handler.recordService.UpdateEntry(user, c.Params("id"), input, time.Now())
	if err != nil {
		return respondRecordError(c, err)
	}
	return c.JSON(record)
}

func respondRecordError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrRecordEditForbidden):
		return apiError(c, fiber.StatusForbidden, "only admins may edit records")
	case errors.Is(err, services.ErrEntryDateRequired),
		errors.Is(err, services.ErrEntryDateInvalid),
		errors.Is(err, services.ErrEntryBackdated),
		errors.Is(err, services.ErrAdminRemarkRequired),
		errors.Is(err, services.ErrSamplePointUnknown),
		errors.Is(err, services.ErrAttributeUnknown):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}
}
