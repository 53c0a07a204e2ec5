package notification

import (
	"time"

	"github.com/gofiber/fiber/v2"

	. "lostfound_backend/models"
	. "lostfound_backend/utils"
)

// ListNotifications godoc
//
//	@Summary		list own notifications
//	@Tags			notification
//	@Produce		json
//	@Router			/notifications [get]
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
func ListNotifications(c *fiber.Ctx) error {
	var query ListRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	querySet := DB.Model(&Notification{}).Where("user_id = ?", userID)
	if query.Type != "" {
		querySet = querySet.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		querySet = querySet.Where("status = ?", query.Status)
	}

	var total int64
	err = querySet.Count(&total).Error
	if err != nil {
		return err
	}

	notifications := make([]Notification, 0, query.Limit)
	err = querySet.Scopes(query.Scope).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		Notifications: notifications,
		Pagination:    query.Build(total),
	})
}

// GetUnreadCount godoc
//
//	@Summary		count of own unread notifications
//	@Tags			notification
//	@Produce		json
//	@Router			/notifications/unread-count [get]
//	@Success		200	{object}	UnreadCountResponse
func GetUnreadCount(c *fiber.Ctx) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var count int64
	err = DB.Model(&Notification{}).
		Where("user_id = ? AND status = ?", userID, NotificationStatusUnread).
		Count(&count).Error
	if err != nil {
		return err
	}

	return c.JSON(UnreadCountResponse{Count: count})
}

// MarkRead godoc
//
//	@Summary		mark one of own notifications as read
//	@Tags			notification
//	@Produce		json
//	@Router			/notifications/{id}/read [patch]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	NotificationResponse
//	@Failure		404	{object}	utils.MessageResponse
func MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var notification Notification
	err = DB.Take(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return NotFound("Notification not found")
	}

	now := time.Now()
	notification.Status = NotificationStatusRead
	notification.ReadAt = &now
	err = DB.Select("Status", "ReadAt").Save(&notification).Error
	if err != nil {
		return err
	}

	return c.JSON(NotificationResponse{
		Message:      "Notification marked as read",
		Notification: &notification,
	})
}

// MarkAllRead godoc
//
//	@Summary		mark all own unread notifications as read
//	@Tags			notification
//	@Produce		json
//	@Router			/notifications/read-all [patch]
//	@Success		200	{object}	utils.MessageResponse
func MarkAllRead(c *fiber.Ctx) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	err = DB.Model(&Notification{}).
		Where("user_id = ? AND status = ?", userID, NotificationStatusUnread).
		Updates(map[string]any{
			"status":  NotificationStatusRead,
			"read_at": time.Now(),
		}).Error
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "All notifications marked as read"})
}

// DeleteNotification godoc
//
//	@Summary		delete one of own notifications
//	@Tags			notification
//	@Produce		json
//	@Router			/notifications/{id} [delete]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func DeleteNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var notification Notification
	err = DB.Take(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return NotFound("Notification not found")
	}

	err = DB.Delete(&notification).Error
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Notification deleted successfully"})
}

// CreateNotification godoc
//
//	@Summary		send a notification to one user, admin only
//	@Tags			notification
//	@Accept			json
//	@Produce		json
//	@Router			/notifications [post]
//	@Param			json	body		CreateRequest	true	"json"
//	@Success		201		{object}	NotificationResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func CreateNotification(c *fiber.Ctx) error {
	var body CreateRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}

	var target User
	err = DB.Take(&target, body.UserID).Error
	if err != nil {
		return NotFound("User not found")
	}
	if admin.Role != RoleSuperAdmin && target.OrganizationID != admin.OrganizationID {
		return Forbidden()
	}

	notification := Notification{
		Type:           body.Type,
		Title:          body.Title,
		Message:        body.Message,
		Status:         NotificationStatusUnread,
		Priority:       body.Priority,
		ActionURL:      body.ActionURL,
		Metadata:       body.Metadata,
		UserID:         target.ID,
		OrganizationID: target.OrganizationID,
	}
	err = DB.Create(&notification).Error
	if err != nil {
		return err
	}

	return c.Status(201).JSON(NotificationResponse{
		Message:      "Notification created successfully",
		Notification: &notification,
	})
}

// CreateBulkNotifications godoc
//
//	@Summary		send a notification to many users, admin only
//	@Tags			notification
//	@Accept			json
//	@Produce		json
//	@Router			/notifications/bulk [post]
//	@Param			json	body		CreateBulkRequest	true	"json"
//	@Success		201		{object}	utils.MessageResponse
//	@Failure		403		{object}	utils.MessageResponse
func CreateBulkNotifications(c *fiber.Ctx) error {
	var body CreateBulkRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}

	querySet := DB.Where("id IN ?", body.UserIDs)
	if admin.Role != RoleSuperAdmin {
		querySet = querySet.Where("organization_id = ?", admin.OrganizationID)
	}
	var targets []User
	err = querySet.Find(&targets).Error
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return NotFound("No matching users")
	}

	notifications := make([]Notification, 0, len(targets))
	for _, target := range targets {
		notifications = append(notifications, Notification{
			Type:           body.Type,
			Title:          body.Title,
			Message:        body.Message,
			Status:         NotificationStatusUnread,
			Priority:       body.Priority,
			ActionURL:      body.ActionURL,
			Metadata:       body.Metadata,
			UserID:         target.ID,
			OrganizationID: target.OrganizationID,
		})
	}
	err = DB.Create(&notifications).Error
	if err != nil {
		return err
	}

	return c.Status(201).JSON(MessageResponse{
		Message: "Notifications created successfully",
		Data:    map[string]any{"count": len(notifications)},
	})
}
