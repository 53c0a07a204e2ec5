package report

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Get("/", ListReports)
	routes.Get("/:id", GetReport)
	routes.Post("/", CreateReport)
	routes.Put("/:id", ModifyReport)
	routes.Patch("/:id/assign", AssignReport)
	routes.Patch("/:id/resolve", ResolveReport)
	routes.Delete("/:id", DeleteReport)
}
