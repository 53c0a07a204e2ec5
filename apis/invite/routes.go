package invite

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Post("/generate", GenerateInviteCode)
	routes.Get("/", ListInviteCodes)
	routes.Post("/validate", ValidateInviteCode)
	routes.Post("/use", UseInviteCode)
	routes.Delete("/:id", DeleteInviteCode)
}
