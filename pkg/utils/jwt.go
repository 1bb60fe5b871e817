package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
)

const DefaultTokenExpiryMinutes = 60

// Claims carries the subject's email and role ("user" or "hospital").
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 access token for the given subject.
// expiryMinutes <= 0 falls back to DefaultTokenExpiryMinutes.
func GenerateToken(email, role, secret string, expiryMinutes int) (string, int64, error) {
	if expiryMinutes <= 0 {
		expiryMinutes = DefaultTokenExpiryMinutes
	}

	expiresAt := time.Now().Add(time.Duration(expiryMinutes) * time.Minute)
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}

// ValidateToken parses and verifies a token issued by GenerateToken.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.ErrInvalidToken
	}
	if claims.Email == "" || claims.Role == "" {
		return nil, appErrors.ErrInvalidToken
	}

	return claims, nil
}
