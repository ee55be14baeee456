// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user record is created on
// registration and is immutable afterwards; there is no profile update flow.
type User struct {
	ID           uuid.UUID // Unique identifier, generated by the store on creation.
	Name         string    // Display name, never empty.
	Email        string    // Login identifier, unique across all users (exact match, no case folding).
	PasswordHash string    // bcrypt hash of the password. The plaintext is never stored or logged.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}
