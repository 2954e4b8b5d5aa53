package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ukkm-backend/internal/cache"
	"ukkm-backend/internal/models"
)

// SessionKeyPrefix namespaces session entries in the session store
const SessionKeyPrefix = "ukkm_session:"

const (
	SourceIdentity = "identity"
	SourcePassword = "password"
)

var (
	ErrMissingCredential  = errors.New("credential or email and password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)

// SessionService signs officers in and keeps their profile in the session store
type SessionService struct {
	jwt      *JWTManager
	identity *IdentityVerifier
	officers *OfficerDirectory
	store    cache.Store
	logger   *zap.Logger
}

func NewSessionService(jwt *JWTManager, identity *IdentityVerifier, officers *OfficerDirectory, store cache.Store, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{jwt: jwt, identity: identity, officers: officers, store: store, logger: logger}
}

func sessionKey(id string) string {
	return SessionKeyPrefix + id
}

// Login verifies the credential and opens a session
func (s *SessionService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	profile, err := s.authenticate(req)
	if err != nil {
		s.logger.Info("login rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	id := uuid.NewString()
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	if err := s.store.Set(ctx, sessionKey(id), data, s.jwt.TTL()); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, expires, err := s.jwt.GenerateToken(id, profile.Email)
	if err != nil {
		s.store.Delete(ctx, sessionKey(id))
		return nil, fmt.Errorf("sign session: %w", err)
	}

	s.logger.Info("login", zap.String("email", profile.Email), zap.String("source", profile.Source))
	return &models.LoginResponse{Token: token, ExpiresAt: expires.Unix(), Profile: profile}, nil
}

func (s *SessionService) authenticate(req models.LoginRequest) (models.Profile, error) {
	if cred := strings.TrimSpace(req.Credential); cred != "" {
		return s.identity.Verify(cred)
	}
	if req.Email == "" || req.Password == "" {
		return models.Profile{}, ErrMissingCredential
	}
	return s.officers.Authenticate(req.Email, req.Password)
}

// RestoreSession returns the profile of a live session, or false
func (s *SessionService) RestoreSession(ctx context.Context, token string) (models.Profile, bool) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return models.Profile{}, false
	}
	data, ok := s.store.Get(ctx, sessionKey(claims.SessionID))
	if !ok {
		return models.Profile{}, false
	}
	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Warn("corrupt session entry", zap.String("session", claims.SessionID), zap.Error(err))
		return models.Profile{}, false
	}
	return profile, true
}

// Logout ends the session behind token. Unknown sessions are ignored.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return ErrNoSession
	}
	s.store.Delete(ctx, sessionKey(claims.SessionID))
	return nil
}
