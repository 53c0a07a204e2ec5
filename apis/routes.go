package apis

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"lostfound_backend/apis/account"
	"lostfound_backend/apis/invite"
	"lostfound_backend/apis/item"
	"lostfound_backend/apis/notification"
	"lostfound_backend/apis/organization"
	"lostfound_backend/apis/report"
	"lostfound_backend/apis/user"
	"lostfound_backend/utils"
)

func RegisterRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api")
	})
	// docs
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/docs/index.html")
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	routes := app.Group("/api")
	routes.Get("/", Index)

	account.RegisterRoutes(routes.Group("/auth"))
	invite.RegisterRoutes(routes.Group("/invite-codes"))
	item.RegisterRoutes(routes.Group("/items"))
	user.RegisterRoutes(routes.Group("/users"))
	organization.RegisterRoutes(routes.Group("/organizations"))
	report.RegisterRoutes(routes.Group("/reports"))
	notification.RegisterRoutes(routes.Group("/notifications"))
}

// Index godoc
//
//	@Produce	application/json
//	@Router		/ [get]
//	@Success	200	{object}	utils.MessageResponse
func Index(c *fiber.Ctx) error {
	return c.JSON(utils.MessageResponse{Message: "Lost and Found API is running"})
}
