package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ukkm-backend/internal/config"
	"ukkm-backend/internal/models"
)

// bcryptCost of 8 keeps login fast on small nodes
const bcryptCost = 8

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if the provided password matches the hash
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// OfficerDirectory checks email/password pairs against configured officers
type OfficerDirectory struct {
	byEmail map[string]config.Officer
}

func NewOfficerDirectory(officers []config.Officer) *OfficerDirectory {
	d := &OfficerDirectory{byEmail: make(map[string]config.Officer, len(officers))}
	for _, o := range officers {
		d.byEmail[strings.ToLower(strings.TrimSpace(o.Email))] = o
	}
	return d
}

// Authenticate returns the officer's profile when the password matches
func (d *OfficerDirectory) Authenticate(email, password string) (models.Profile, error) {
	o, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok || o.PasswordHash == "" || !VerifyPassword(o.PasswordHash, password) {
		return models.Profile{}, ErrInvalidCredentials
	}
	name := o.Name
	if name == "" {
		name = o.Email
	}
	return models.Profile{Email: o.Email, Name: name, Unit: o.Unit, Source: SourcePassword}, nil
}
