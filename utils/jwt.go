package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the custom JWT claims carried by every session token.
type Claims struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CanManage bool   `json:"canManage"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for a user.
func GenerateToken(userID uint, username, role string, canManage bool, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		CanManage: canManage,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
