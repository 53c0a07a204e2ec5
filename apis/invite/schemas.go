package invite

import (
	"lostfound_backend/models"
	"lostfound_backend/utils"
)

type GenerateRequest struct {
	Type          string `json:"type" default:"user" validate:"oneof=user admin"`
	Email         string `json:"email" validate:"omitempty,email"`
	MaxUses       int    `json:"maxUses" default:"1" validate:"min=1"`
	ExpiresInDays int    `json:"expiresInDays" validate:"omitempty,min=1"`
	Notes         string `json:"notes"`
}

type ListRequest struct {
	utils.PageQuery
	Type   string `json:"type" query:"type" validate:"omitempty,oneof=user admin"`
	Status string `json:"status" query:"status" validate:"omitempty,oneof=active used expired"`
	Search string `json:"search" query:"search"`
}

type ValidateRequest struct {
	Code string `json:"code" validate:"required"`
}

type UseRequest struct {
	Code   string `json:"code" validate:"required"`
	UserID int    `json:"userId" validate:"required"`
}

type InviteCodeResponse struct {
	Message    string             `json:"message"`
	InviteCode *models.InviteCode `json:"inviteCode"`
}

// PublicInviteCode narrows the embedded organization to its public fields;
// served on the unauthenticated validate and use endpoints
type PublicInviteCode struct {
	*models.InviteCode
	Organization models.OrganizationPublic `json:"organization"`
}

type PublicInviteCodeResponse struct {
	Message    string            `json:"message"`
	InviteCode *PublicInviteCode `json:"inviteCode"`
}

type ListResponse struct {
	InviteCodes []models.InviteCode `json:"inviteCodes"`
	Pagination  utils.Pagination    `json:"pagination"`
}
