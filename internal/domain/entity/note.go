package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a personal text document owned by exactly one user.
// Ownership never transfers; a note is only ever visible to its owner.
type Note struct {
	ID        uuid.UUID // Unique identifier, generated by the store on creation.
	OwnerID   uuid.UUID // The user this note belongs to.
	Title     string    // Free text, defaults to empty.
	Content   string    // Free text, defaults to empty.
	CreatedAt time.Time // Timestamp of when this note was created.
	UpdatedAt time.Time // Refreshed on every mutation.
}
