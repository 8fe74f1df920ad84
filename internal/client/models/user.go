// Package models defines the identity types shared across the Autoscribe
// client: the authenticated user record and its persisted projections.
package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Role distinguishes the two account kinds the application knows about.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the two known values.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleStudent:
		return RoleStudent, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// DashboardPage is the page a user of this role lands on after login.
func (r Role) DashboardPage() string {
	return string(r) + "-dashboard.html"
}

// UserRecord is the in-memory representation of the authenticated identity.
//
// ID is never empty: locally created accounts carry a role-prefixed ID (see
// LocalID), student-ID logins use the raw student ID, and remote-verified
// logins use whatever opaque ID the server returned.
//
// The JSON field for Role is "type" for compatibility with the primary
// persisted key; the normalized projection (StoredUser) uses "role".
type UserRecord struct {
	ID         string `json:"id"`
	Role       Role   `json:"type"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Class      string `json:"class,omitempty"`
	Department string `json:"department,omitempty"`
	Language   string `json:"language,omitempty"`
}

// StoredUser is the normalized projection written under the secondary
// session key and the shape of the user object on the remote login wire.
type StoredUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Class    string `json:"class"`
	Language string `json:"language"`
}

// Stored builds the normalized projection of u. The language defaults to
// "en" when the record does not carry one.
func (u UserRecord) Stored() StoredUser {
	lang := u.Language
	if lang == "" {
		lang = "en"
	}
	return StoredUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Class:    u.Class,
		Language: lang,
	}
}

// Record converts the projection back into a full UserRecord. Used when the
// primary session key is absent and the secondary one has to serve a load.
func (s StoredUser) Record() UserRecord {
	return UserRecord{
		ID:       s.ID,
		Role:     s.Role,
		Name:     s.Name,
		Email:    s.Email,
		Class:    s.Class,
		Language: s.Language,
	}
}

// LoginResult is what a successful remote login yields: a bearer token and
// the server's view of the user. The caller persists both.
type LoginResult struct {
	Token string
	User  UserRecord
}

// LocalID builds the identifier for locally created accounts: a role prefix
// plus the email in base64 with the '=' padding stripped. The encoding is
// reversible, so the same email always maps to the same ID.
func LocalID(role Role, email string) string {
	prefix := "S_"
	if role == RoleTeacher {
		prefix = "T_"
	}
	return prefix + strings.TrimRight(base64.StdEncoding.EncodeToString([]byte(email)), "=")
}
