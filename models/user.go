package models

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"lostfound_backend/config"
	"lostfound_backend/utils"
	"lostfound_backend/utils/auth"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

type User struct {
	ID         int            `json:"id" gorm:"primaryKey"`
	JoinedTime time.Time      `json:"joinedTime" gorm:"autoCreateTime"`
	LastLogin  time.Time      `json:"lastLogin" gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
	Name       string         `json:"name" gorm:"size:128"`
	Email      string         `json:"email" gorm:"size:128;uniqueIndex"`
	Password   string         `json:"-" gorm:"size:256"`
	Role       string         `json:"role" gorm:"size:16;default:'user';index"`
	Status     string         `json:"status" gorm:"size:16;default:'active';index"`
	Phone      string         `json:"phone" gorm:"size:32"`

	Street  string `json:"street" gorm:"size:256"`
	City    string `json:"city" gorm:"size:128"`
	State   string `json:"state" gorm:"size:128"`
	ZipCode string `json:"zipCode" gorm:"size:32"`
	Country string `json:"country" gorm:"size:128"`

	EmailNotifications bool `json:"emailNotifications" gorm:"default:true"`
	PushNotifications  bool `json:"pushNotifications" gorm:"default:true"`
	ShowContact        bool `json:"showContact" gorm:"default:true"`
	ShowLocation       bool `json:"showLocation" gorm:"default:true"`

	RegisterIP  string   `json:"-" gorm:"size:32"`
	LastLoginIP string   `json:"-" gorm:"size:32"`
	LoginIP     []string `json:"-" gorm:"serializer:json"`

	ResetPasswordToken   string     `json:"-" gorm:"size:64"`
	ResetPasswordExpires *time.Time `json:"-"`

	OrganizationID int           `json:"organizationId" gorm:"index"`
	Organization   *Organization `json:"organization,omitempty"`

	InviteCodeID *int `json:"-"`

	Notifications []Notification `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (user *User) IsAdminRole() bool {
	return user.Role == RoleAdmin || user.Role == RoleSuperAdmin
}

func (user *User) UpdateIP(ip string) {
	user.LastLoginIP = ip
	if !slices.Contains(user.LoginIP, ip) {
		user.LoginIP = append(user.LoginIP, ip)
	}
}

func GetUserCacheKey(userID int) string {
	return "lostfound_user:" + strconv.Itoa(userID)
}

const UserCacheExpire = 48 * time.Hour

// GetUserID reads the id stored by the authentication middleware
func GetUserID(c *fiber.Ctx) (int, error) {
	id, ok := c.Locals("user_id").(int)
	if !ok || id == 0 {
		return 0, utils.Unauthorized("Unauthorized")
	}
	return id, nil
}

// GetUserClaims returns the parsed token claims stored by the middleware
func GetUserClaims(c *fiber.Ctx) (*auth.UserClaims, error) {
	claims, ok := c.Locals("user_claims").(*auth.UserClaims)
	if !ok {
		return nil, utils.Unauthorized("Unauthorized")
	}
	return claims, nil
}

// LoadUserByIDFromCache return value `err` is directly from DB.Take()
func LoadUserByIDFromCache(userID int, userPtr *User) error {
	cacheKey := GetUserCacheKey(userID)
	if config.GetCache(cacheKey, userPtr) != nil {
		err := DB.Take(userPtr, userID).Error
		if err != nil {
			return err
		}
		// err has been printed in SetCache
		_ = config.SetCache(cacheKey, *userPtr, UserCacheExpire)
	}
	return nil
}

func DeleteUserCacheByID(userID int) {
	cacheKey := GetUserCacheKey(userID)
	err := config.DeleteCache(cacheKey)
	if err != nil {
		utils.Logger.Error("err in DeleteUserCacheByID: ", zap.Error(err))
	}
}

func LoadUserByID(userID int) (*User, error) {
	var user User
	err := LoadUserByIDFromCache(userID, &user)
	if err != nil {
		DeleteUserCacheByID(userID)
		return nil, err
	}
	return &user, nil
}

func LoadUser(c *fiber.Ctx) (*User, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return nil, err
	}
	return LoadUserByID(userID)
}

// LoadAdmin loads the current user and requires an administrative role
func LoadAdmin(c *fiber.Ctx) (*User, error) {
	user, err := LoadUser(c)
	if err != nil {
		return nil, err
	}
	if !user.IsAdminRole() {
		return nil, utils.Forbidden()
	}
	return user, nil
}

// CreateSuperAdmin seeds the system-wide administrator account
func CreateSuperAdmin(organizationID int) error {
	password, err := auth.MakePassword("admin123")
	if err != nil {
		return err
	}
	return DB.Create(&User{
		Name:           "Super Admin",
		Email:          "admin@lostfound.com",
		Password:       password,
		Role:           RoleSuperAdmin,
		Status:         UserStatusActive,
		OrganizationID: organizationID,
	}).Error
}
