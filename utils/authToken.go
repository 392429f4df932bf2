package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/o1egl/paseto"
)

const (
	// SessionExpiry bounds how long a login cookie stays valid.
	SessionExpiry = 12 * time.Hour

	RoleWorker = "Worker"
	RoleAdmin  = "Admin"
)

// SessionClaims is the data carried inside the session token: the logged-in
// identity plus the in-progress patient draft. The draft rides in the
// encrypted cookie between the intake step and the disease-selection step,
// the same way the legacy client-side session worked.
type SessionClaims struct {
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	PatientName   string    `json:"patientName,omitempty"`
	PatientAge    string    `json:"patientAge,omitempty"`
	PatientMobile string    `json:"patientMobile,omitempty"`
	Expiry        time.Time `json:"expiry"`
}

// HasDraft reports whether all three intake fields are present. Disease
// selection is only reachable with a complete draft.
func (c *SessionClaims) HasDraft() bool {
	return c.PatientName != "" && c.PatientAge != "" && c.PatientMobile != ""
}

// ClearDraft drops the in-progress patient fields, keeping the identity.
func (c *SessionClaims) ClearDraft() {
	c.PatientName = ""
	c.PatientAge = ""
	c.PatientMobile = ""
}

// GetSymmetricKey retrieves the 32-byte PASETO key from the environment.
func GetSymmetricKey() []byte {
	key := os.Getenv("SYMMETRIC_KEY")
	if len(key) != 32 {
		log.Fatalf("SYMMETRIC_KEY must be 32 bytes long. Current length: %d", len(key))
	}
	return []byte(key)
}

// GenerateSessionToken mints a fresh session token for the given identity
// with an empty draft.
func GenerateSessionToken(username, role string) (string, error) {
	return EncodeSessionClaims(&SessionClaims{Username: username, Role: role})
}

// EncodeSessionClaims encrypts claims into a session token, stamping a new
// expiry. Used both at login and when the draft changes mid-session.
func EncodeSessionClaims(claims *SessionClaims) (string, error) {
	claims.Expiry = time.Now().Add(SessionExpiry)
	token, err := paseto.NewV2().Encrypt(GetSymmetricKey(), claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return token, nil
}

// ValidateSessionToken decrypts the token and checks expiry and, when given,
// the required role.
func ValidateSessionToken(tokenString string, requiredRoles ...string) (*SessionClaims, error) {
	var claims SessionClaims
	if err := paseto.NewV2().Decrypt(tokenString, GetSymmetricKey(), &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt session token: %w", err)
	}

	if time.Now().After(claims.Expiry) {
		return nil, errors.New("session expired")
	}

	if len(requiredRoles) == 0 {
		return &claims, nil
	}
	for _, role := range requiredRoles {
		if claims.Role == role {
			return &claims, nil
		}
	}
	return nil, errors.New("insufficient permissions")
}
