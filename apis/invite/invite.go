package invite

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"lostfound_backend/config"
	. "lostfound_backend/models"
	. "lostfound_backend/utils"
)

var redemptionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lostfound_invite_code_redemptions_total",
	Help: "invite code redemption attempts by result",
}, []string{"result"})

// GenerateInviteCode godoc
//
//	@Summary		generate an invite code, admin only
//	@Tags			invite-code
//	@Accept			json
//	@Produce		json
//	@Router			/invite-codes/generate [post]
//	@Param			json	body		GenerateRequest	true	"json"
//	@Success		201		{object}	InviteCodeResponse
//	@Failure		401		{object}	utils.MessageResponse
//	@Failure		403		{object}	utils.MessageResponse
func GenerateInviteCode(c *fiber.Ctx) error {
	var body GenerateRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}

	if body.ExpiresInDays == 0 {
		body.ExpiresInDays = config.Config.InviteCodeExpireDays
	}

	inviteCode, err := NewInviteCode(body.Type, body.Email, body.MaxUses, body.ExpiresInDays, body.Notes, admin)
	if err != nil {
		return err
	}
	err = DB.Create(inviteCode).Error
	if err != nil {
		return err
	}

	if body.Email != "" {
		// advisory target only; delivery failure does not fail issuance
		if err = SendInviteCodeEmail(inviteCode.Code, body.Email); err != nil {
			Logger.Error("send invite code email", zap.Error(err))
		}
	}

	return c.Status(201).JSON(InviteCodeResponse{
		Message:    "Invite code generated successfully",
		InviteCode: inviteCode,
	})
}

// ListInviteCodes godoc
//
//	@Summary		list invite codes of the caller's organization, admin only
//	@Tags			invite-code
//	@Produce		json
//	@Router			/invite-codes [get]
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
func ListInviteCodes(c *fiber.Ctx) error {
	var query ListRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}

	querySet := DB.Model(&InviteCode{}).
		Where("organization_id = ?", admin.OrganizationID)
	if query.Type != "" {
		querySet = querySet.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		querySet = querySet.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		querySet = querySet.Where(
			"code LIKE ? OR email LIKE ?",
			"%"+query.Search+"%", "%"+query.Search+"%",
		)
	}

	var total int64
	err = querySet.Count(&total).Error
	if err != nil {
		return err
	}

	inviteCodes := make([]InviteCode, 0, query.Limit)
	err = querySet.Scopes(query.Scope).
		Preload("CreatedBy").Preload("UsedBy").
		Order("created_at DESC").
		Find(&inviteCodes).Error
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		InviteCodes: inviteCodes,
		Pagination:  query.Build(total),
	})
}

// ValidateInviteCode godoc
//
//	@Summary		validate an invite code before registration
//	@Description	read-only, repeated calls never mutate the code
//	@Tags			invite-code
//	@Accept			json
//	@Produce		json
//	@Router			/invite-codes/validate [post]
//	@Param			json	body		ValidateRequest	true	"json"
//	@Success		200		{object}	PublicInviteCodeResponse
//	@Failure		400		{object}	utils.MessageResponse	"inactive, expired or exhausted"
//	@Failure		404		{object}	utils.MessageResponse
func ValidateInviteCode(c *fiber.Ctx) error {
	var body ValidateRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	inviteCode, err := CheckInviteCode(body.Code)
	if err != nil {
		return err
	}

	return c.JSON(PublicInviteCodeResponse{
		Message:    "Invite code is valid",
		InviteCode: publicInviteCode(inviteCode),
	})
}

// UseInviteCode godoc
//
//	@Summary		redeem one use of an invite code
//	@Description	re-runs all validation checks, then increments the use counter
//	@Tags			invite-code
//	@Accept			json
//	@Produce		json
//	@Router			/invite-codes/use [post]
//	@Param			json	body		UseRequest	true	"json"
//	@Success		200		{object}	PublicInviteCodeResponse
//	@Failure		400		{object}	utils.MessageResponse	"inactive, expired or exhausted"
//	@Failure		404		{object}	utils.MessageResponse
func UseInviteCode(c *fiber.Ctx) error {
	var body UseRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	inviteCode, err := RedeemInviteCode(body.Code, body.UserID)
	redemptionCounter.WithLabelValues(redemptionResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(PublicInviteCodeResponse{
		Message:    "Invite code used successfully",
		InviteCode: publicInviteCode(inviteCode),
	})
}

// publicInviteCode hides the non-public organization fields from callers
// that hold no session yet
func publicInviteCode(inviteCode *InviteCode) *PublicInviteCode {
	view := &PublicInviteCode{InviteCode: inviteCode}
	if inviteCode.Organization != nil {
		view.Organization = inviteCode.Organization.Public()
	}
	return view
}

// DeleteInviteCode godoc
//
//	@Summary		delete an invite code of the caller's organization, admin only
//	@Tags			invite-code
//	@Produce		json
//	@Router			/invite-codes/{id} [delete]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		403	{object}	utils.MessageResponse	"foreign organization"
//	@Failure		404	{object}	utils.MessageResponse
func DeleteInviteCode(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}

	var inviteCode InviteCode
	err = DB.Take(&inviteCode, id).Error
	if err != nil {
		return NotFound("Invite code not found")
	}

	if inviteCode.OrganizationID != admin.OrganizationID {
		return Forbidden()
	}

	err = DB.Delete(&inviteCode).Error
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Invite code deleted successfully"})
}

func redemptionResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInviteCodeNotFound):
		return "not_found"
	case errors.Is(err, ErrInviteCodeInactive):
		return "inactive"
	case errors.Is(err, ErrInviteCodeExpired):
		return "expired"
	case errors.Is(err, ErrInviteCodeExhausted):
		return "exhausted"
	default:
		return "error"
	}
}
