// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the FinTrack system.
type User struct {
	ID        uuid.UUID
	FullName  string
	Email     string // Stored trimmed and lower-cased; globally unique.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User entity. The caller is responsible for
// normalizing the email before construction.
func NewUser(fullName, email string) *User {
	now := time.Now().UTC()

	return &User{
		ID:        uuid.New(),
		FullName:  fullName,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
