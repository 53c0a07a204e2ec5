package organization

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Get("/", ListOrganizations)
	routes.Get("/code/:code", GetOrganizationByCode)
	routes.Get("/:id", GetOrganization)
	routes.Get("/:id/stats", GetOrganizationStats)
	routes.Post("/", CreateOrganization)
	routes.Put("/:id", ModifyOrganization)
	routes.Delete("/:id", DeleteOrganization)
	routes.Patch("/:id/settings", ModifySettings)
}
