package googleauth

import (
	"context"

	"google.golang.org/api/idtoken"
)

// Claims are the verified identity claims extracted from a Google ID token.
type Claims struct {
	Email   string
	Name    string
	Picture string
}

// Verifier validates an opaque identity token and returns its claims.
// The auth service receives one at construction instead of relying on a
// process-global SDK initialization.
type Verifier interface {
	Verify(ctx context.Context, identityToken string) (*Claims, error)
}

// IDTokenVerifier verifies Google-issued ID tokens against a client ID
// audience using Google's public certs.
type IDTokenVerifier struct {
	audience string
}

func NewIDTokenVerifier(clientID string) *IDTokenVerifier {
	return &IDTokenVerifier{audience: clientID}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, identityToken string) (*Claims, error) {
	payload, err := idtoken.Validate(ctx, identityToken, v.audience)
	if err != nil {
		return nil, err
	}
	return &Claims{
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}
	return ""
}
