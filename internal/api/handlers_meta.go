package api

import (
	"github.com/aqualims/aqualims/internal/models"
	"github.com/gofiber/fiber/v2"
)

// Meta exposes the fixed enumerations the entry forms are built from.
func (handler *Handler) Meta(c *fiber.Ctx) error {
	defaultLimits := make(map[string]string, len(models.Attributes))
	for _, attribute := range models.Attributes {
		defaultLimits[attribute] = models.DefaultLimitFor(attribute)
	}

	return c.JSON(fiber.Map{
		"samplePoints":  models.SamplePoints,
		"attributes":    models.Attributes,
		"defaultLimits": defaultLimits,
	})
}
