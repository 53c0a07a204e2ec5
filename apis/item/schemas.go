package item

import (
	"lostfound_backend/models"
	"lostfound_backend/utils"
)

type ListRequest struct {
	utils.PageQuery
	Type           string `json:"type" query:"type" validate:"omitempty,oneof=lost found"`
	Status         string `json:"status" query:"status" validate:"omitempty,oneof=active resolved claimed"`
	Category       string `json:"category" query:"category" validate:"omitempty,oneof=electronics clothing jewelry documents keys other"`
	Search         string `json:"search" query:"search"`
	OrganizationID int    `json:"organizationId" query:"organizationId"`
}

type CreateRequest struct {
	Type        string   `json:"type" validate:"required,oneof=lost found"`
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description" validate:"required,min=1"`
	Location    string   `json:"location" validate:"required,min=1"`
	Reward      int      `json:"reward" validate:"min=0"`
	Images      []string `json:"images"`
	Category    string   `json:"category" default:"other" validate:"oneof=electronics clothing jewelry documents keys other"`
	Color       string   `json:"color"`
	Brand       string   `json:"brand"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`

	Tags []string `json:"tags"`
}

type ModifyRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Location    *string  `json:"location" validate:"omitempty,min=1"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active resolved claimed"`
	Reward      *int     `json:"reward" validate:"omitempty,min=0"`
	Images      []string `json:"images"`
	Category    *string  `json:"category" validate:"omitempty,oneof=electronics clothing jewelry documents keys other"`
	Color       *string  `json:"color"`
	Brand       *string  `json:"brand"`

	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`

	Tags  []string `json:"tags"`
	Notes *string  `json:"notes"`
}

type ResolveRequest struct {
	Notes string `json:"notes"`
}

type ItemResponse struct {
	Message string       `json:"message"`
	Item    *models.Item `json:"item"`
}

type ListResponse struct {
	Items      []models.Item    `json:"items"`
	Pagination utils.Pagination `json:"pagination"`
}
