package account

import "lostfound_backend/models"

type AddressModel struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
	Country *string `json:"country"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	// exactly one of the two joining credentials is used; the invite code
	// wins when both are present
	InviteCode       *string       `json:"inviteCode" validate:"omitempty,min=1"`
	OrganizationCode *string       `json:"organizationCode" validate:"omitempty,min=1"`
	Address          *AddressModel `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

type ModifyProfileRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1"`
	Phone              *string `json:"phone"`
	EmailNotifications *bool   `json:"emailNotifications"`
	PushNotifications  *bool   `json:"pushNotifications"`
	ShowContact        *bool   `json:"showContact"`
	ShowLocation       *bool   `json:"showLocation"`
	*AddressModel
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
