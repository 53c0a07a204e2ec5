package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"lostfound_backend/config"
	"lostfound_backend/utils"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type UserClaims struct {
	UserID         int    `json:"id"`
	Role           string `json:"role"`
	OrganizationID int    `json:"organizationId"`
	Type           string `json:"type"`
	jwt.RegisteredClaims
}

// CreateToken issues an access/refresh token pair signed with the shared secret
func CreateToken(userID int, role string, organizationID int) (accessToken, refreshToken string, err error) {
	accessToken, err = signToken(userID, role, organizationID, TokenTypeAccess,
		time.Duration(config.Config.AccessExpireTime)*time.Minute)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = signToken(userID, role, organizationID, TokenTypeRefresh,
		time.Duration(config.Config.RefreshExpireTime)*24*time.Hour)
	if err != nil {
		return "", "", err
	}

	return
}

func signToken(userID int, role string, organizationID int, tokenType string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID:         userID,
		Role:           role,
		OrganizationID: organizationID,
		Type:           tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			Issuer:    config.AppName,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(config.Config.JwtSecret))
}

// ParseToken verifies the signature and returns the claims; expired or
// malformed tokens map to 401
func ParseToken(tokenString string) (*UserClaims, error) {
	var claims UserClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, utils.Unauthorized()
		}
		return []byte(config.Config.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, utils.Unauthorized()
	}
	return &claims, nil
}
