package account

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	. "lostfound_backend/models"
	. "lostfound_backend/utils"
	"lostfound_backend/utils/auth"
)

// Register godoc
//
//	@Summary		register a new user
//	@Description	join with either an invite code or a public organization code
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Router			/auth/register [post]
//	@Param			json	body		RegisterRequest	true	"json"
//	@Success		201		{object}	TokenResponse
//	@Failure		400		{object}	utils.MessageResponse	"registered, invalid code"
//	@Failure		500		{object}	utils.MessageResponse
func Register(c *fiber.Ctx) error {
	var body RegisterRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	var (
		organizationID int
		role           = RoleUser
		inviteCode     *InviteCode
	)

	switch {
	case body.InviteCode != nil:
		inviteCode, err = CheckInviteCode(*body.InviteCode)
		if err != nil {
			return err
		}
		organizationID = inviteCode.OrganizationID
		if inviteCode.Type == InviteCodeTypeAdmin {
			role = RoleAdmin
		}
	case body.OrganizationCode != nil:
		organization, err := LoadOrganizationByCode(*body.OrganizationCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return BadRequest("Invalid organization code")
			}
			return err
		}
		if !organization.Settings.AllowPublicRegistration {
			return Forbidden("Public registration is disabled for this organization")
		}
		if organization.Settings.RequireInviteCode {
			return BadRequest("Invitation code needed")
		}
		organizationID = organization.ID
	default:
		return BadRequest("An invite code or organization code is required")
	}

	var existing User
	err = DB.Take(&existing, "email = ?", body.Email).Error
	if err == nil {
		return BadRequest("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password, err := auth.MakePassword(body.Password)
	if err != nil {
		return err
	}

	remoteIP := GetRealIP(c)
	user := User{
		Name:           body.Name,
		Email:          body.Email,
		Password:       password,
		Phone:          body.Phone,
		Role:           role,
		Status:         UserStatusActive,
		OrganizationID: organizationID,
		RegisterIP:     remoteIP,
	}
	user.UpdateIP(remoteIP)
	if body.Address != nil {
		applyAddress(&user, body.Address)
	}

	err = DB.Create(&user).Error
	if err != nil {
		return err
	}

	// mark the code redeemed with the new user's id; a failure here leaves
	// the user in place and surfaces the redemption error
	if inviteCode != nil {
		redeemed, err := RedeemInviteCode(inviteCode.Code, user.ID)
		if err != nil {
			return err
		}
		user.InviteCodeID = &redeemed.ID
		err = DB.Model(&user).Update("invite_code_id", redeemed.ID).Error
		if err != nil {
			return err
		}
	}

	accessToken, refreshToken, err := auth.CreateToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(TokenResponse{
		Access:  accessToken,
		Refresh: refreshToken,
		Message: "User registered successfully",
		User:    &user,
	})
}

// Login godoc
//
//	@Summary		login with email and password
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Router			/auth/login [post]
//	@Param			json	body		LoginRequest	true	"json"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	utils.MessageResponse	"invalid credentials, inactive account"
func Login(c *fiber.Ctx) error {
	var body LoginRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	var user User
	err = DB.Preload("Organization").Take(&user, "email = ?", body.Email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BadRequest("Invalid credentials")
		}
		return err
	}

	ok, err := auth.CheckPassword(body.Password, user.Password)
	if err != nil {
		return err
	}
	if !ok {
		return BadRequest("Invalid credentials")
	}

	if user.Status != UserStatusActive {
		return BadRequest("Account is not active")
	}

	user.LastLogin = time.Now()
	user.UpdateIP(GetRealIP(c))
	err = DB.Model(&user).Select("LastLogin", "LastLoginIP", "LoginIP").Updates(&user).Error
	if err != nil {
		return err
	}
	DeleteUserCacheByID(user.ID)

	accessToken, refreshToken, err := auth.CreateToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{
		Access:  accessToken,
		Refresh: refreshToken,
		Message: "Login successful",
		User:    &user,
	})
}

// Refresh godoc
//
//	@Summary		exchange a refresh token for a new token pair
//	@Tags			account
//	@Accept			json
//	@Produce		json
//	@Router			/auth/refresh [post]
//	@Param			json	body		RefreshRequest	true	"json"
//	@Success		200		{object}	TokenResponse
//	@Failure		401		{object}	utils.MessageResponse
func Refresh(c *fiber.Ctx) error {
	var body RefreshRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	claims, err := auth.ParseToken(body.Refresh)
	if err != nil {
		return err
	}
	if claims.Type != auth.TokenTypeRefresh {
		return Unauthorized("refresh token invalid")
	}

	user, err := LoadUserByID(claims.UserID)
	if err != nil {
		return err
	}

	accessToken, refreshToken, err := auth.CreateToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{
		Access:  accessToken,
		Refresh: refreshToken,
		Message: "Token refreshed",
	})
}

func applyAddress(user *User, address *AddressModel) {
	if address.Street != nil {
		user.Street = *address.Street
	}
	if address.City != nil {
		user.City = *address.City
	}
	if address.State != nil {
		user.State = *address.State
	}
	if address.ZipCode != nil {
		user.ZipCode = *address.ZipCode
	}
	if address.Country != nil {
		user.Country = *address.Country
	}
}
