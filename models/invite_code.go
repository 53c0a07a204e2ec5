package models

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound_backend/utils"
)

const (
	InviteCodeTypeUser  = "user"
	InviteCodeTypeAdmin = "admin"
)

const (
	InviteCodeStatusActive  = "active"
	InviteCodeStatusUsed    = "used"
	InviteCodeStatusExpired = "expired"
)

var (
	ErrInviteCodeNotFound  = utils.NotFound("Invalid invite code")
	ErrInviteCodeInactive  = utils.BadRequest("Invite code is not active")
	ErrInviteCodeExpired   = utils.BadRequest("Invite code has expired")
	ErrInviteCodeExhausted = utils.BadRequest("Invite code has reached maximum uses")
)

type InviteCode struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Code      string    `json:"code" gorm:"size:32;uniqueIndex"`
	Type      string    `json:"type" gorm:"size:16;default:'user';index"`
	Status    string    `json:"status" gorm:"size:16;default:'active';index"`
	ExpiresAt time.Time `json:"expiresAt"`

	MaxUses     int `json:"maxUses" gorm:"default:1"`
	CurrentUses int `json:"currentUses" gorm:"default:0"`

	UsedAt   *time.Time `json:"usedAt"`
	UsedByID *int       `json:"usedBy"`
	UsedBy   *User      `json:"usedByUser,omitempty" gorm:"foreignKey:UsedByID"`

	Email string `json:"email,omitempty" gorm:"size:128"`
	Notes string `json:"notes,omitempty"`

	OrganizationID int           `json:"organizationId" gorm:"index"`
	Organization   *Organization `json:"organization,omitempty"`

	CreatedByID int   `json:"createdBy" gorm:"index"`
	CreatedBy   *User `json:"createdByUser,omitempty" gorm:"foreignKey:CreatedByID"`
}

// GenerateCodeValue draws 4 random bytes and renders them as uppercase hex.
// Collisions are left to the unique index.
func GenerateCodeValue() (string, error) {
	var raw [4]byte
	_, err := rand.Read(raw[:])
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(raw[:])), nil
}

// NewInviteCode builds an unsaved code scoped to the issuer's organization
func NewInviteCode(codeType, email string, maxUses, expiresInDays int, notes string, issuer *User) (*InviteCode, error) {
	code, err := GenerateCodeValue()
	if err != nil {
		return nil, err
	}
	return &InviteCode{
		Code:           code,
		Type:           codeType,
		Status:         InviteCodeStatusActive,
		ExpiresAt:      time.Now().AddDate(0, 0, expiresInDays),
		MaxUses:        maxUses,
		CurrentUses:    0,
		Email:          email,
		Notes:          notes,
		OrganizationID: issuer.OrganizationID,
		CreatedByID:    issuer.ID,
	}, nil
}

// LoadInviteCode looks a code up case-insensitively with its owning organization
func LoadInviteCode(tx *gorm.DB, code string) (*InviteCode, error) {
	var inviteCode InviteCode
	err := tx.Preload("Organization").
		Take(&inviteCode, "code = ?", strings.ToUpper(code)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInviteCodeNotFound
		}
		return nil, err
	}
	return &inviteCode, nil
}

// Check runs the state preconditions in the documented order: the cached
// status flag first, then expiry, then the usage counter. A stale status
// still yields a clear reason.
func (inviteCode *InviteCode) Check(now time.Time) error {
	if inviteCode.Status != InviteCodeStatusActive {
		return ErrInviteCodeInactive
	}
	if inviteCode.ExpiresAt.Before(now) {
		return ErrInviteCodeExpired
	}
	if inviteCode.CurrentUses >= inviteCode.MaxUses {
		return ErrInviteCodeExhausted
	}
	return nil
}

// CheckInviteCode is the read-only validation; registration forms call it
// before collecting the rest of the user's details
func CheckInviteCode(code string) (*InviteCode, error) {
	inviteCode, err := LoadInviteCode(DB, code)
	if err != nil {
		return nil, err
	}
	err = inviteCode.Check(time.Now())
	if err != nil {
		return nil, err
	}
	return inviteCode, nil
}

// RedeemInviteCode consumes one use and associates it with the given user.
// The checks are re-run, then the counter is incremented with a guarded
// UPDATE so two concurrent redemptions can never both take the last use.
func RedeemInviteCode(code string, userID int) (*InviteCode, error) {
	var inviteCode *InviteCode
	err := DB.Transaction(func(tx *gorm.DB) error {
		var err error
		inviteCode, err = LoadInviteCode(tx, code)
		if err != nil {
			return err
		}
		err = inviteCode.Check(time.Now())
		if err != nil {
			return err
		}

		if err = consumeUse(tx, inviteCode.ID, userID); err != nil {
			return err
		}

		// reload the incremented row, then retire it once exhausted
		if err = tx.Take(inviteCode, inviteCode.ID).Error; err != nil {
			return err
		}
		if inviteCode.CurrentUses >= inviteCode.MaxUses {
			inviteCode.Status = InviteCodeStatusUsed
			return tx.Model(inviteCode).Update("status", InviteCodeStatusUsed).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inviteCode, nil
}

// consumeUse increments current_uses in the same statement as the
// current_uses < max_uses guard; losing the race surfaces as Exhausted
func consumeUse(tx *gorm.DB, inviteCodeID, userID int) error {
	now := time.Now()
	result := tx.Model(&InviteCode{}).
		Where("id = ? AND current_uses < max_uses", inviteCodeID).
		Updates(map[string]any{
			"current_uses": gorm.Expr("current_uses + 1"),
			"used_at":      now,
			"used_by_id":   userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInviteCodeExhausted
	}
	return nil
}

// ExpireInviteCodesTask flips overdue active codes to expired. Status is a
// cached field kept for listing filters; redemption never trusts it.
func ExpireInviteCodesTask() {
	result := DB.Model(&InviteCode{}).
		Where("status = ? AND expires_at < ?", InviteCodeStatusActive, time.Now()).
		Update("status", InviteCodeStatusExpired)
	if result.Error != nil {
		utils.Logger.Error("expire invite codes task", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		utils.Logger.Info("expire invite codes task",
			zap.Int64("expired", result.RowsAffected))
	}
}
