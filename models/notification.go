package models

import (
	"time"
)

const (
	NotificationStatusUnread   = "unread"
	NotificationStatusRead     = "read"
	NotificationStatusArchived = "archived"
)

type Notification struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Type      string    `json:"type" gorm:"size:32;index"` // item_match, item_resolved, report_update, admin_action, system
	Title     string    `json:"title" gorm:"size:256"`
	Message   string    `json:"message"`
	Status    string    `json:"status" gorm:"size:16;default:'unread';index"`
	Priority  string    `json:"priority" gorm:"size:16;default:'medium'"`

	ReadAt    *time.Time        `json:"readAt"`
	ActionURL string            `json:"actionUrl" gorm:"size:256"`
	Metadata  map[string]string `json:"metadata" gorm:"serializer:json"`
	ExpiresAt *time.Time        `json:"expiresAt"`

	UserID         int `json:"userId" gorm:"index"`
	OrganizationID int `json:"organizationId" gorm:"index"`
}
