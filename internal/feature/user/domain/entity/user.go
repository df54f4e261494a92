// Package entity defines the domain entities for the user feature.
package entity

import "time"

// NameMaxLength is the ceiling enforced by the user validator.
const NameMaxLength = 50

// Role controls which routes a user may access.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// RoleValues returns every allowed role value.
func RoleValues() []Role {
	return []Role{RoleUser, RoleAdmin, RoleOwner}
}

// IsValidRole reports whether s is an allowed role value.
func IsValidRole(s string) bool {
	for _, r := range RoleValues() {
		if string(r) == s {
			return true
		}
	}
	return false
}

// User represents a registered user in the system.
// Password holds the hex-encoded scrypt hash, never plaintext; the hash,
// salt and reset-token fields are excluded from every JSON response.
type User struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:50;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Role  Role   `gorm:"size:16;not null" json:"role"`

	Password string `gorm:"size:255;not null" json:"-"`
	Salt     string `gorm:"size:64;not null" json:"-"`

	ResetPasswordToken      *string    `gorm:"size:128" json:"-"`
	ResetPasswordExpiration *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
