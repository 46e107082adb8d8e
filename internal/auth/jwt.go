package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type JWTValidator struct {
	hmacKey []byte
}

func NewJWTValidator(hmacKey []byte) *JWTValidator {
	return &JWTValidator{hmacKey: hmacKey}
}

// Validate parses a "Bearer <token>" authorization header and returns its
// claims. Token issuance lives with the identity collaborator; this side
// only verifies the HMAC signature and expiry.
func (v *JWTValidator) Validate(authHeader string) (*Claims, error) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.hmacKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Sign produces a token for claims. Production tokens come from the identity
// collaborator; this is used by the seeder and tests.
func (v *JWTValidator) Sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.hmacKey)
}
