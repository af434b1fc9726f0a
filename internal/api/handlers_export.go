package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	records, err := handler.recordService.ListFiltered(recordFilterFromQuery(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	buffer, err := handler.exportService.BuildCSV(records)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportDisposition("csv", handler.location))
	return c.Send(buffer.Bytes())
}

func (handler *Handler) ExportXLSX(c *fiber.Ctx) error {
	records, err := handler.recordService.ListFiltered(recordFilterFromQuery(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	buffer, err := handler.exportService.BuildXLSX(records)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, exportDisposition("xlsx", handler.location))
	return c.Send(buffer.Bytes())
}

func exportDisposition(extension string, location *time.Location) string {
	stamp := time.Now().In(location).Format("2006-01-02")
	return fmt.Sprintf(`attachment; filename="aqualims-records-%s.%s"`, stamp, extension)
}
