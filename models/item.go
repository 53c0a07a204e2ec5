package models

import (
	"time"
)

const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

const (
	ItemStatusActive   = "active"
	ItemStatusResolved = "resolved"
	ItemStatusClaimed  = "claimed"
)

type Item struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Type        string    `json:"type" gorm:"size:16;index"`
	Title       string    `json:"title" gorm:"size:256"`
	Description string    `json:"description"`
	Location    string    `json:"location" gorm:"size:256"`
	Date        time.Time `json:"date" gorm:"autoCreateTime"`
	Status      string    `json:"status" gorm:"size:16;default:'active';index"`
	Reward      int       `json:"reward" gorm:"default:0"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	Category    string    `json:"category" gorm:"size:32;default:'other';index"`
	Color       string    `json:"color" gorm:"size:64"`
	Brand       string    `json:"brand" gorm:"size:128"`

	ContactName  string `json:"contactName" gorm:"size:128"`
	ContactEmail string `json:"contactEmail" gorm:"size:128"`
	ContactPhone string `json:"contactPhone" gorm:"size:32"`

	Tags  []string `json:"tags" gorm:"serializer:json"`
	Notes string   `json:"notes"`

	ResolvedAt   *time.Time `json:"resolvedAt"`
	ResolvedByID *int       `json:"resolvedBy"`
	ResolvedBy   *User      `json:"-" gorm:"foreignKey:ResolvedByID"`

	ReporterID int   `json:"reporterId" gorm:"index"`
	Reporter   *User `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`

	OrganizationID int           `json:"organizationId" gorm:"index"`
	Organization   *Organization `json:"organization,omitempty"`
}
