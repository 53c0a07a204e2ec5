package user

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Get("/", ListUsers)
	routes.Get("/organization/:orgId", ListOrganizationUsers)
	routes.Get("/:id", GetUser)
	routes.Get("/:id/stats", GetUserStats)
	routes.Post("/", CreateUser)
	routes.Put("/:id", ModifyUser)
	routes.Delete("/:id", DeleteUser)
	routes.Patch("/:id/status", ModifyUserStatus)
}
