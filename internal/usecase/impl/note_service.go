package impl

import (
	"context"
	"log/slog"

	deliverycontext "dash/internal/delivery/context"
	"dash/internal/domain/entity"
	domainerrors "dash/internal/domain/errors"
	"dash/internal/domain/repository"
	"dash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	noteRepo repository.NoteRepository
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for noteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
	Logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo: params.NoteRepo,
		logger:   params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNote persists a new note for the acting user.
func (srv *noteService) CreateNote(ctx context.Context, input *usecase.CreateNoteInput) (*entity.Note, error) {
	note := &entity.Note{
		OwnerID: input.OwnerID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := srv.noteRepo.Create(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to create note", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.Any("noteID", note.ID), slog.Any("ownerID", note.OwnerID))

	return note, nil
}

// ListNotes returns all notes belonging to the acting user, most recently
// updated first.
func (srv *noteService) ListNotes(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	notes, err := srv.noteRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list notes", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

// GetNote retrieves a single note owned by the acting user. A note that
// exists under a different owner is reported as not found.
func (srv *noteService) GetNote(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoteNotFound, "failed to get note")
		}

		srv.log(ctx).Error("Failed to get note", slog.Any("noteID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get note")
	}

	return note, nil
}

// UpdateNote overwrites the title and content of a note owned by the acting
// user and returns the updated note.
func (srv *noteService) UpdateNote(ctx context.Context, input *usecase.UpdateNoteInput) (*entity.Note, error) {
	note := &entity.Note{
		ID:      input.ID,
		OwnerID: input.OwnerID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := srv.noteRepo.Update(ctx, note); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoteNotFound, "failed to update note")
		}

		srv.log(ctx).Error("Failed to update note", slog.Any("noteID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update note")
	}

	// Re-read so the caller gets the stored timestamps, not just the fields
	// it sent.
	updated, err := srv.noteRepo.FindByIDAndOwner(ctx, input.ID, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoteNotFound, "failed to update note")
		}

		return nil, errors.Wrap(err, "failed to reload updated note")
	}

	srv.log(ctx).Debug("Note updated", slog.Any("noteID", updated.ID), slog.Any("ownerID", updated.OwnerID))

	return updated, nil
}

// DeleteNote removes a note owned by the acting user.
func (srv *noteService) DeleteNote(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := srv.noteRepo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return errors.Wrap(domainerrors.ErrNoteNotFound, "failed to delete note")
		}

		srv.log(ctx).Error("Failed to delete note", slog.Any("noteID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete note")
	}

	srv.log(ctx).Debug("Note deleted", slog.Any("noteID", id), slog.Any("ownerID", ownerID))

	return nil
}
