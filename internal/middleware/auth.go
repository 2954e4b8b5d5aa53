package middleware

import (
	"context"
	"net/http"
	"strings"

	"ukkm-backend/internal/models"
)

type contextKey string

const ProfileKey contextKey = "profile"
const TokenKey contextKey = "token"

// SessionResolver maps a session token to the signed-in profile
type SessionResolver interface {
	RestoreSession(ctx context.Context, token string) (models.Profile, bool)
}

type AuthMiddleware struct {
	sessions SessionResolver
}

func NewAuthMiddleware(sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate is a middleware that requires a live session token
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		profile, ok := m.sessions.RestoreSession(r.Context(), token)
		if !ok {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ProfileKey, profile)
		ctx = context.WithValue(ctx, TokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// Browsers cannot set headers on websocket upgrades, so a "token" query
// parameter is accepted as well.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if t := r.URL.Query().Get("token"); t != "" {
			return t, true
		}
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetProfileFromContext extracts the signed-in profile from request context
func GetProfileFromContext(ctx context.Context) (models.Profile, bool) {
	profile, ok := ctx.Value(ProfileKey).(models.Profile)
	return profile, ok
}

// GetTokenFromContext extracts the session token from request context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
