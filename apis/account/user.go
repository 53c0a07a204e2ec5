package account

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound_backend/config"
	. "lostfound_backend/models"
	. "lostfound_backend/utils"
	"lostfound_backend/utils/auth"
)

// GetCurrentUser godoc
//
//	@Summary		get current user with organization
//	@Tags			account
//	@Produce		json
//	@Router			/auth/me [get]
//	@Success		200	{object}	User
//	@Failure		401	{object}	utils.MessageResponse
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}
	var user User
	err = DB.Preload("Organization").Take(&user, userID).Error
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// ModifyProfile godoc
//
//	@Summary		modify current user's profile
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Router			/auth/profile [put]
//	@Param			json	body		ModifyProfileRequest	true	"json"
//	@Success		200		{object}	User
//	@Failure		401		{object}	utils.MessageResponse
func ModifyProfile(c *fiber.Ctx) error {
	var body ModifyProfileRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	if body.Name != nil {
		user.Name = *body.Name
	}
	if body.Phone != nil {
		user.Phone = *body.Phone
	}
	if body.EmailNotifications != nil {
		user.EmailNotifications = *body.EmailNotifications
	}
	if body.PushNotifications != nil {
		user.PushNotifications = *body.PushNotifications
	}
	if body.ShowContact != nil {
		user.ShowContact = *body.ShowContact
	}
	if body.ShowLocation != nil {
		user.ShowLocation = *body.ShowLocation
	}
	if body.AddressModel != nil {
		applyAddress(user, body.AddressModel)
	}

	err = DB.Save(user).Error
	if err != nil {
		return err
	}
	DeleteUserCacheByID(user.ID)

	return c.JSON(user)
}

// ChangePassword godoc
//
//	@Summary		change password, requires the current one
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Router			/auth/change-password [put]
//	@Param			json	body		ChangePasswordRequest	true	"json"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.MessageResponse	"current password incorrect"
func ChangePassword(c *fiber.Ctx) error {
	var body ChangePasswordRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	ok, err := auth.CheckPassword(body.CurrentPassword, user.Password)
	if err != nil {
		return err
	}
	if !ok {
		return BadRequest("Current password is incorrect")
	}

	user.Password, err = auth.MakePassword(body.NewPassword)
	if err != nil {
		return err
	}
	err = DB.Model(user).Update("password", user.Password).Error
	if err != nil {
		return err
	}
	DeleteUserCacheByID(user.ID)

	return c.JSON(MessageResponse{Message: "Password changed successfully"})
}

// ForgotPassword godoc
//
//	@Summary		request a password reset token
//	@Description	the token is mailed when an email sender is configured
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Router			/auth/forgot-password [post]
//	@Param			json	body		ForgotPasswordRequest	true	"json"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ForgotPassword(c *fiber.Ctx) error {
	var body ForgotPasswordRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	var user User
	err = DB.Take(&user, "email = ?", body.Email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("User not found")
		}
		return err
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	expires := time.Now().Add(time.Duration(config.Config.ResetTokenExpireTime) * time.Minute)
	err = DB.Model(&user).Updates(map[string]any{
		"reset_password_token":   token,
		"reset_password_expires": expires,
	}).Error
	if err != nil {
		return err
	}

	if err = SendPasswordResetEmail(token, user.Email); err != nil {
		Logger.Error("send password reset email", zap.Error(err))
	}

	return c.JSON(MessageResponse{Message: "Password reset email sent"})
}

// ResetPassword godoc
//
//	@Summary		reset password with a reset token
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Router			/auth/reset-password [post]
//	@Param			json	body		ResetPasswordRequest	true	"json"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.MessageResponse	"invalid or expired reset token"
func ResetPassword(c *fiber.Ctx) error {
	var body ResetPasswordRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	var user User
	err = DB.Take(&user, "reset_password_token = ? AND reset_password_expires > ?",
		body.Token, time.Now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BadRequest("Invalid or expired reset token")
		}
		return err
	}

	password, err := auth.MakePassword(body.NewPassword)
	if err != nil {
		return err
	}
	err = DB.Model(&user).Updates(map[string]any{
		"password":               password,
		"reset_password_token":   "",
		"reset_password_expires": nil,
	}).Error
	if err != nil {
		return err
	}
	DeleteUserCacheByID(user.ID)

	return c.JSON(MessageResponse{Message: "Password reset successfully"})
}
