package notification

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Get("/", ListNotifications)
	routes.Get("/unread-count", GetUnreadCount)
	routes.Post("/", CreateNotification)
	routes.Post("/bulk", CreateBulkNotifications)
	routes.Patch("/read-all", MarkAllRead)
	routes.Patch("/:id/read", MarkRead)
	routes.Delete("/:id", DeleteNotification)
}
