package models

import (
	"time"
)

const (
	ReportStatusPending       = "pending"
	ReportStatusInvestigating = "investigating"
	ReportStatusResolved      = "resolved"
	ReportStatusDismissed     = "dismissed"
)

type Report struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Type        string    `json:"type" gorm:"size:32;index"` // lost, found, suspicious, inappropriate
	Status      string    `json:"status" gorm:"size:16;default:'pending';index"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	AdminNotes  string    `json:"adminNotes"`
	Priority    string    `json:"priority" gorm:"size:16;default:'medium';index"`

	AssignedToID *int       `json:"assignedTo"`
	AssignedTo   *User      `json:"-" gorm:"foreignKey:AssignedToID"`
	AssignedAt   *time.Time `json:"assignedAt"`

	ResolvedAt  *time.Time `json:"resolvedAt"`
	Resolution  string     `json:"resolution"`
	ActionTaken string     `json:"actionTaken" gorm:"size:16;default:'none'"` // warning, suspension, ban, none

	Evidence []string `json:"evidence" gorm:"serializer:json"`

	ItemID *int  `json:"itemId" gorm:"index"`
	Item   *Item `json:"item,omitempty"`

	ReporterID int   `json:"reporterId" gorm:"index"`
	Reporter   *User `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`

	OrganizationID int `json:"organizationId" gorm:"index"`
}
