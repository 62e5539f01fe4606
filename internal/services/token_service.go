package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/projectboard/project-task-api/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// UserClaims is the JWT payload carried by every authenticated request.
type UserClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies signed bearer tokens.
type TokenService struct {
	secret  []byte
	issuer  string
	expires time.Duration
}

// NewTokenService creates a new TokenService
func NewTokenService(secret, issuer string, expiresMinutes int) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		issuer:  issuer,
		expires: time.Duration(expiresMinutes) * time.Minute,
	}
}

// Issue creates a signed token for the user and returns it together
// with its expiry time in UTC.
func (s *TokenService) Issue(user *models.User) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(s.expires)

	claims := UserClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify parses the token and returns its claims. Any malformed,
// tampered or expired token maps to ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
