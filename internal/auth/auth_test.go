package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ukkm-backend/internal/cache"
	"ukkm-backend/internal/config"
	"ukkm-backend/internal/models"
)

const (
	identitySecret = "identity-secret"
	identityIssuer = "https://accounts.example.test"
)

func identityToken(t *testing.T, secret, issuer, email string) string {
	t.Helper()
	claims := IdentityClaims{
		Email:   email,
		Name:    "Siti Aminah",
		Picture: "https://example.test/p.png",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newService(t *testing.T) (*SessionService, *cache.MemoryStore) {
	t.Helper()
	hash, err := HashPassword("rahsia123")
	require.NoError(t, err)

	store := cache.NewMemoryStore(time.Hour)
	svc := NewSessionService(
		NewJWTManager("session-secret", "ukkm-backend", 1),
		NewIdentityVerifier(identitySecret, identityIssuer, "UKKM Kota Setar"),
		NewOfficerDirectory([]config.Officer{{Email: "Pegawai@moh.gov.my", Name: "Pegawai", PasswordHash: hash}}),
		store,
		nil,
	)
	return svc, store
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "ukkm-backend", 2)
	token, expires, err := m.GenerateToken("sid-1", "a@b.c")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expires, time.Minute)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)

	_, err = NewJWTManager("other", "ukkm-backend", 2).ValidateToken(token)
	assert.Error(t, err)
	_, err = NewJWTManager("secret", "someone-else", 2).ValidateToken(token)
	assert.Error(t, err)
}

func TestLoginWithIdentityToken(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Credential: identityToken(t, identitySecret, identityIssuer, "siti@moh.gov.my")})
	require.NoError(t, err)
	assert.Equal(t, "siti@moh.gov.my", resp.Profile.Email)
	assert.Equal(t, "Siti Aminah", resp.Profile.Name)
	assert.Equal(t, SourceIdentity, resp.Profile.Source)
	assert.Equal(t, "UKKM Kota Setar", resp.Profile.Unit)
	assert.Equal(t, 1, store.Len())

	profile, ok := svc.RestoreSession(ctx, resp.Token)
	require.True(t, ok)
	assert.Equal(t, resp.Profile, profile)
}

func TestLoginRejectsForeignIdentityToken(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.LoginRequest{Credential: identityToken(t, "wrong", identityIssuer, "x@y.z")})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Credential: identityToken(t, identitySecret, "https://evil.test", "x@y.z")})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Credential: identityToken(t, identitySecret, identityIssuer, "")})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, store.Len())
}

func TestLoginWithPassword(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: " pegawai@MOH.gov.my", Password: "rahsia123"})
	require.NoError(t, err)
	assert.Equal(t, SourcePassword, resp.Profile.Source)
	assert.Equal(t, "Pegawai", resp.Profile.Name)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "pegawai@moh.gov.my", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "pegawai@moh.gov.my"})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestLogoutEndsSession(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "pegawai@moh.gov.my", Password: "rahsia123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))
	_, ok := svc.RestoreSession(ctx, resp.Token)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), ErrNoSession)
	_, ok = svc.RestoreSession(ctx, "garbage")
	assert.False(t, ok)
}

func TestIdentityDisabled(t *testing.T) {
	v := NewIdentityVerifier("", "", "")
	_, err := v.Verify("anything")
	assert.ErrorIs(t, err, ErrIdentityDisabled)
}
