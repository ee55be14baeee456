package usecase

import (
	"context"

	"dash/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNoteInput defines the data required to create a note.
type CreateNoteInput struct {
	OwnerID uuid.UUID
	Title   string
	Content string
}

// UpdateNoteInput defines the data required to overwrite an existing note.
// Both fields are required; there is no partial update.
type UpdateNoteInput struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Title   string
	Content string
}

// NoteUsecase defines the interface for note-related business operations.
// Every operation takes the acting user's ID and only ever touches that
// user's notes.
type NoteUsecase interface {
	CreateNote(ctx context.Context, input *CreateNoteInput) (*entity.Note, error)
	ListNotes(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error)
	GetNote(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error)
	UpdateNote(ctx context.Context, input *UpdateNoteInput) (*entity.Note, error)
	DeleteNote(ctx context.Context, id, ownerID uuid.UUID) error
}
