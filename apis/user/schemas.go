package user

import (
	"lostfound_backend/models"
	"lostfound_backend/utils"
)

type ListRequest struct {
	utils.PageQuery
	Role           string `json:"role" query:"role" validate:"omitempty,oneof=user admin super_admin"`
	Status         string `json:"status" query:"status" validate:"omitempty,oneof=active inactive suspended"`
	OrganizationID int    `json:"organizationId" query:"organizationId"`
	Search         string `json:"search" query:"search"`
}

type CreateRequest struct {
	Name           string `json:"name" validate:"required,min=1"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" default:"user" validate:"oneof=user admin"`
	OrganizationID int    `json:"organizationId"`
}

type ModifyRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Phone *string `json:"phone"`
	// admin only
	Role           *string `json:"role" validate:"omitempty,oneof=user admin"`
	OrganizationID *int    `json:"organizationId"`
}

type ModifyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}

type UserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type ListResponse struct {
	Users      []models.User    `json:"users"`
	Pagination utils.Pagination `json:"pagination"`
}

type StatsResponse struct {
	TotalItems     int64   `json:"totalItems"`
	ActiveItems    int64   `json:"activeItems"`
	ResolvedItems  int64   `json:"resolvedItems"`
	ResolutionRate float64 `json:"resolutionRate"`
}
