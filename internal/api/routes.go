package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/meta", handler.Meta)

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	grid := api.Group("/grid", handler.AuthRequired)
	grid.Get("/:date", handler.GetGrid)
	grid.Post("/:date", handler.SaveGrid)

	records := api.Group("/records", handler.AuthRequired)
	records.Get("", handler.ListRecords)
	records.Post("", handler.CreateRecord)
	records.Put("/:id", handler.AdminOnly, handler.UpdateRecord)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/xlsx", handler.ExportXLSX)

	users := api.Group("/users", handler.AuthRequired, handler.AdminOnly)
	users.Get("", handler.ListUsers)
	users.Post("", handler.CreateUser)
	users.Post("/:id/toggle-active", handler.ToggleUserActive)
	users.Post("/:id/reset-password", handler.ResetUserPassword)
}
