package notification

import (
	"lostfound_backend/models"
	"lostfound_backend/utils"
)

type ListRequest struct {
	utils.PageQuery
	Type   string `json:"type" query:"type" validate:"omitempty,oneof=item_match item_resolved report_update admin_action system"`
	Status string `json:"status" query:"status" validate:"omitempty,oneof=unread read archived"`
}

type CreateRequest struct {
	UserID    int               `json:"userId" validate:"required"`
	Type      string            `json:"type" default:"system" validate:"oneof=item_match item_resolved report_update admin_action system"`
	Title     string            `json:"title" validate:"required,min=1"`
	Message   string            `json:"message" validate:"required,min=1"`
	Priority  string            `json:"priority" default:"medium" validate:"oneof=low medium high"`
	ActionURL string            `json:"actionUrl"`
	Metadata  map[string]string `json:"metadata"`
}

type CreateBulkRequest struct {
	UserIDs   []int             `json:"userIds" validate:"required,min=1"`
	Type      string            `json:"type" default:"system" validate:"oneof=item_match item_resolved report_update admin_action system"`
	Title     string            `json:"title" validate:"required,min=1"`
	Message   string            `json:"message" validate:"required,min=1"`
	Priority  string            `json:"priority" default:"medium" validate:"oneof=low medium high"`
	ActionURL string            `json:"actionUrl"`
	Metadata  map[string]string `json:"metadata"`
}

type NotificationResponse struct {
	Message      string               `json:"message"`
	Notification *models.Notification `json:"notification"`
}

type ListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Pagination    utils.Pagination      `json:"pagination"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
