package item

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Get("/", ListItems)
	routes.Get("/user/:userId", ListUserItems)
	routes.Get("/organization/:orgId", ListOrganizationItems)
	routes.Get("/:id", GetItem)
	routes.Post("/", CreateItem)
	routes.Put("/:id", ModifyItem)
	routes.Delete("/:id", DeleteItem)
	routes.Patch("/:id/resolve", ResolveItem)
}
