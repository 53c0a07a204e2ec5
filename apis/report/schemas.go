package report

import (
	"lostfound_backend/models"
	"lostfound_backend/utils"
)

type ListRequest struct {
	utils.PageQuery
	Type     string `json:"type" query:"type" validate:"omitempty,oneof=lost found suspicious inappropriate"`
	Status   string `json:"status" query:"status" validate:"omitempty,oneof=pending investigating resolved dismissed"`
	Priority string `json:"priority" query:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Search   string `json:"search" query:"search"`
}

type CreateRequest struct {
	Type        string   `json:"type" validate:"required,oneof=lost found suspicious inappropriate"`
	Reason      string   `json:"reason" validate:"required,min=1"`
	Description string   `json:"description"`
	Priority    string   `json:"priority" default:"medium" validate:"oneof=low medium high urgent"`
	ItemID      *int     `json:"itemId"`
	Evidence    []string `json:"evidence"`
}

type ModifyRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=pending investigating resolved dismissed"`
	Priority   *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AdminNotes *string `json:"adminNotes"`
}

type AssignRequest struct {
	AssignedTo int `json:"assignedTo" validate:"required"`
}

type ResolveRequest struct {
	Resolution  string `json:"resolution" validate:"required,min=1"`
	ActionTaken string `json:"actionTaken" default:"none" validate:"oneof=warning suspension ban none"`
}

type ReportResponse struct {
	Message string         `json:"message"`
	Report  *models.Report `json:"report"`
}

type ListResponse struct {
	Reports    []models.Report  `json:"reports"`
	Pagination utils.Pagination `json:"pagination"`
}
