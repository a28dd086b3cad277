package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// Claims is the typed session exposed to handlers after sign-in:
// who the caller is, their coarse role, and (when a priest record
// exists) its approval status. Handlers never re-read the database
// to answer role questions.
type Claims struct {
	AccountID    string `json:"account_id"`
	Role         string `json:"role"`
	PriestStatus string `json:"priest_status,omitempty"`
	jwt.RegisteredClaims
}

func CreateToken(accountID uuid.UUID, role string, priestStatus string) (string, error) {
	claims := &Claims{
		AccountID:    accountID.String(),
		Role:         role,
		PriestStatus: priestStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 12)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
