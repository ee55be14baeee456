package repository

import (
	"context"
	"errors"

	"dash/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when a note does not exist for the given owner.
// A note owned by a different user yields the same error, so callers cannot
// tell "not yours" apart from "does not exist".
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the standard operations for note persistence.
// Every read and mutation is owner-scoped: the owner filter is part of the
// query itself, never a separate authorization step.
type NoteRepository interface {
	// Create persists a new note and fills in the generated ID and timestamps.
	Create(ctx context.Context, note *entity.Note) error

	// ListByOwner returns all notes belonging to ownerID, most recently
	// updated first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error)

	// FindByIDAndOwner retrieves a single note matched on (id AND owner).
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error)

	// Update overwrites title and content of the note matched on (id AND
	// owner) and refreshes its updated_at. Returns ErrNoteNotFound when no
	// row matched.
	Update(ctx context.Context, note *entity.Note) error

	// DeleteByIDAndOwner removes the note matched on (id AND owner).
	// Returns ErrNoteNotFound when no row matched.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
