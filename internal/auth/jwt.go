package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ukkm-backend/internal/timeutil"
)

// Claims is the body of a session token. The profile itself lives in the
// session store under SessionID.
type Claims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret, issuer string, expirationHours int) *JWTManager {
	if expirationHours <= 0 {
		expirationHours = 12
	}
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    time.Duration(expirationHours) * time.Hour,
	}
}

// TTL is how long issued tokens stay valid
func (j *JWTManager) TTL() time.Duration {
	return j.ttl
}

// GenerateToken signs a session token for sessionID
func (j *JWTManager) GenerateToken(sessionID, email string) (string, time.Time, error) {
	now := timeutil.Now()
	expirationTime := now.Add(j.ttl)

	claims := &Claims{
		SessionID: sessionID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expirationTime, nil
}

// ValidateToken verifies a session token and returns the claims
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, hmacKey(j.secret), jwt.WithIssuer(j.issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("token has no session")
	}

	return claims, nil
}

func hmacKey(secret []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	}
}
