package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"ukkm-backend/internal/models"
)

// IdentityClaims are the fields read from a third-party identity token
type IdentityClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// IdentityVerifier checks identity tokens issued by the configured provider
type IdentityVerifier struct {
	secret []byte
	issuer string
	unit   string
}

func NewIdentityVerifier(secret, issuer, unit string) *IdentityVerifier {
	return &IdentityVerifier{secret: []byte(secret), issuer: issuer, unit: unit}
}

// Enabled reports whether a verification secret is configured
func (v *IdentityVerifier) Enabled() bool {
	return len(v.secret) > 0
}

// Verify validates the token and maps its claims onto a profile
func (v *IdentityVerifier) Verify(credential string) (models.Profile, error) {
	if !v.Enabled() {
		return models.Profile{}, ErrIdentityDisabled
	}

	claims := &IdentityClaims{}
	opts := []jwt.ParserOption{}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if _, err := jwt.ParseWithClaims(credential, claims, hmacKey(v.secret), opts...); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if claims.Email == "" {
		return models.Profile{}, fmt.Errorf("%w: identity token has no email", ErrInvalidCredentials)
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}
	return models.Profile{
		Email:   claims.Email,
		Name:    name,
		Picture: claims.Picture,
		Unit:    v.unit,
		Source:  SourceIdentity,
	}, nil
}

var ErrIdentityDisabled = errors.New("identity sign-in is not configured")
