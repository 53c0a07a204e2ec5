package models

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound_backend/config"
	"lostfound_backend/utils"
)

const DefaultOrganizationCode = "DEFAULT"

const (
	OrganizationStatusActive   = "active"
	OrganizationStatusInactive = "inactive"
)

type OrganizationSettings struct {
	AllowPublicRegistration bool `json:"allowPublicRegistration" default:"true"`
	RequireInviteCode       bool `json:"requireInviteCode"`
}

type OrganizationStatistics struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalItems    int64 `json:"totalItems"`
	ResolvedItems int64 `json:"resolvedItems"`
}

type Organization struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Name        string    `json:"name" gorm:"size:128"`
	Code        string    `json:"code" gorm:"size:32;uniqueIndex"`
	Type        string    `json:"type" gorm:"size:32;default:'other'"`
	Description string    `json:"description"`
	Address     string    `json:"address" gorm:"size:256"`
	City        string    `json:"city" gorm:"size:128"`
	State       string    `json:"state" gorm:"size:128"`
	ZipCode     string    `json:"zipCode" gorm:"size:32"`
	Country     string    `json:"country" gorm:"size:128"`

	ContactEmail string `json:"contactEmail" gorm:"size:128"`
	ContactPhone string `json:"contactPhone" gorm:"size:32"`

	Settings   OrganizationSettings   `json:"settings" gorm:"serializer:json"`
	Statistics OrganizationStatistics `json:"statistics" gorm:"serializer:json"`

	Status      string `json:"status" gorm:"size:16;default:'active';index"`
	CreatedByID int    `json:"createdBy"`

	Users         []User         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Items         []Item         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	InviteCodes   []InviteCode   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Reports       []Report       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Notifications []Notification `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// OrganizationPublic is the unauthenticated view served to registration forms
type OrganizationPublic struct {
	ID                      int    `json:"id"`
	Name                    string `json:"name"`
	Code                    string `json:"code"`
	Type                    string `json:"type"`
	Description             string `json:"description"`
	AllowPublicRegistration bool   `json:"allowPublicRegistration"`
}

func (organization *Organization) Public() OrganizationPublic {
	return OrganizationPublic{
		ID:                      organization.ID,
		Name:                    organization.Name,
		Code:                    organization.Code,
		Type:                    organization.Type,
		Description:             organization.Description,
		AllowPublicRegistration: organization.Settings.AllowPublicRegistration,
	}
}

func GetOrganizationCacheKey(code string) string {
	return "lostfound_organization:" + code
}

const OrganizationCacheExpire = time.Hour

// LoadOrganizationByCode is used on the hot registration path, so lookups go
// through the cache; organization codes are case-insensitive
func LoadOrganizationByCode(code string) (*Organization, error) {
	code = strings.ToUpper(code)
	cacheKey := GetOrganizationCacheKey(code)

	var organization Organization
	if config.GetCache(cacheKey, &organization) == nil {
		return &organization, nil
	}

	err := DB.Take(&organization, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	_ = config.SetCache(cacheKey, organization, OrganizationCacheExpire)
	return &organization, nil
}

func DeleteOrganizationCache(code string) {
	err := config.DeleteCache(GetOrganizationCacheKey(strings.ToUpper(code)))
	if err != nil {
		utils.Logger.Error("err in DeleteOrganizationCache", zap.Error(err))
	}
}

// RefreshOrganizationStatistics recomputes and stores the cached counters
func RefreshOrganizationStatistics(tx *gorm.DB, organizationID int) (OrganizationStatistics, error) {
	var statistics OrganizationStatistics
	tx.Model(&User{}).Where("organization_id = ?", organizationID).Count(&statistics.TotalUsers)
	tx.Model(&Item{}).Where("organization_id = ?", organizationID).Count(&statistics.TotalItems)
	tx.Model(&Item{}).Where("organization_id = ? AND status = ?", organizationID, ItemStatusResolved).
		Count(&statistics.ResolvedItems)

	err := tx.Model(&Organization{ID: organizationID}).Update("statistics", statistics).Error
	return statistics, err
}

// RefreshStatisticsTask runs nightly from cron
func RefreshStatisticsTask() {
	var organizationIDs []int
	err := DB.Model(&Organization{}).Pluck("id", &organizationIDs).Error
	if err != nil {
		utils.Logger.Error("refresh statistics task", zap.Error(err))
		return
	}
	for _, id := range organizationIDs {
		if _, err = RefreshOrganizationStatistics(DB, id); err != nil {
			utils.Logger.Error("refresh statistics task", zap.Int("organization_id", id), zap.Error(err))
		}
	}
}
