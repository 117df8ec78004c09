package helpers

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and parses access tokens. Tokens encode the user's
// store identifier and carry no expiry; nothing in this service verifies
// them on inbound requests yet, but Parse exists for tests and for any
// future protected routes.
type JWTManager struct {
	Secret []byte
}

var defaultManager *JWTManager

func NewJWTManager(secret string) *JWTManager {
	m := &JWTManager{Secret: []byte(secret)}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an HS256 token over the user's identifier.
func (m *JWTManager) GenerateAccessToken(userID string) (string, error) {
	claims := &Claims{UserID: userID}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// ParseAccessToken validates the signature and returns the claims.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
