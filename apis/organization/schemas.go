package organization

import (
	"lostfound_backend/models"
	"lostfound_backend/utils"
)

type ListRequest struct {
	utils.PageQuery
	Type   string `json:"type" query:"type" validate:"omitempty,oneof=school university company community other"`
	Status string `json:"status" query:"status" validate:"omitempty,oneof=active inactive"`
	Search string `json:"search" query:"search"`
}

type CreateRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Code        string `json:"code" validate:"required,min=2,max=32"`
	Type        string `json:"type" default:"other" validate:"oneof=school university company community other"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Country     string `json:"country"`

	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`

	Settings *models.OrganizationSettings `json:"settings"`
}

type ModifyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,oneof=school university company community other"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	ZipCode     *string `json:"zipCode"`
	Country     *string `json:"country"`

	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
}

type ModifySettingsRequest struct {
	AllowPublicRegistration *bool `json:"allowPublicRegistration"`
	RequireInviteCode       *bool `json:"requireInviteCode"`
}

type OrganizationResponse struct {
	Message      string               `json:"message"`
	Organization *models.Organization `json:"organization"`
}

type ListResponse struct {
	Organizations []models.Organization `json:"organizations"`
	Pagination    utils.Pagination      `json:"pagination"`
}

type StatsResponse struct {
	TotalUsers     int64   `json:"totalUsers"`
	TotalItems     int64   `json:"totalItems"`
	ActiveItems    int64   `json:"activeItems"`
	ResolvedItems  int64   `json:"resolvedItems"`
	ResolutionRate float64 `json:"resolutionRate"`
}
