package account

import (
	"github.com/gofiber/fiber/v2"

	"lostfound_backend/middlewares"
)

func RegisterRoutes(routes fiber.Router) {
	// token
	routes.Post("/register", middlewares.AuthRateLimit, Register)
	routes.Post("/login", middlewares.AuthRateLimit, Login)
	routes.Post("/refresh", Refresh)

	// account management
	routes.Get("/me", GetCurrentUser)
	routes.Put("/profile", ModifyProfile)
	routes.Put("/change-password", ChangePassword)
	routes.Post("/forgot-password", middlewares.AuthRateLimit, ForgotPassword)
	routes.Post("/reset-password", ResetPassword)
}
