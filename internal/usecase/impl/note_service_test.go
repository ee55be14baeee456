package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dash/internal/domain/entity"
	domainerrors "dash/internal/domain/errors"
	"dash/internal/domain/repository"
	mockRepo "dash/internal/mocks/repository"
	"dash/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNoteService(t *testing.T) (usecase.NoteUsecase, *mockRepo.MockNoteRepository) {
	t.Helper()

	noteRepo := new(mockRepo.MockNoteRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNoteService(NoteServiceParams{
		NoteRepo: noteRepo,
		Logger:   logger,
	})

	return service, noteRepo
}

func TestNoteService_CreateNote_Success(t *testing.T) {
	service, noteRepo := createTestNoteService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	noteRepo.On("Create", ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(args mock.Arguments) {
			note := args.Get(1).(*entity.Note)
			note.ID = uuid.New()
			note.CreatedAt = time.Now()
			note.UpdatedAt = note.CreatedAt
		}).
		Return(nil)

	note, err := service.CreateNote(ctx, &usecase.CreateNoteInput{
		OwnerID: ownerID,
		Title:   "groceries",
		Content: "milk",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, ownerID, note.OwnerID)
	assert.Equal(t, "groceries", note.Title)
}

func TestNoteService_ListNotes_ScopedToOwner(t *testing.T) {
	service, noteRepo := createTestNoteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	stored := []*entity.Note{
		{ID: uuid.New(), OwnerID: ownerID, Title: "newer"},
		{ID: uuid.New(), OwnerID: ownerID, Title: "older"},
	}

	noteRepo.On("ListByOwner", ctx, ownerID).Return(stored, nil)

	notes, err := service.ListNotes(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, stored, notes)
}

func TestNoteService_GetNote_NotFoundForOtherOwner(t *testing.T) {
	service, noteRepo := createTestNoteService(t)

	ctx := context.Background()
	noteID := uuid.New()
	strangerID := uuid.New()

	noteRepo.On("FindByIDAndOwner", ctx, noteID, strangerID).Return(nil, repository.ErrNoteNotFound)

	note, err := service.GetNote(ctx, noteID, strangerID)

	require.Error(t, err)
	assert.Nil(t, note)
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteService_UpdateNote_Success(t *testing.T) {
	service, noteRepo := createTestNoteService(t)

	ctx := context.Background()
	noteID := uuid.New()
	ownerID := uuid.New()
	updatedAt := time.Now()

	noteRepo.On("Update", ctx, mock.AnythingOfType("*entity.Note")).Return(nil)
	noteRepo.On("FindByIDAndOwner", ctx, noteID, ownerID).Return(&entity.Note{
		ID:        noteID,
		OwnerID:   ownerID,
		Title:     "new title",
		Content:   "new content",
		UpdatedAt: updatedAt,
	}, nil)

	note, err := service.UpdateNote(ctx, &usecase.UpdateNoteInput{
		ID:      noteID,
		OwnerID: ownerID,
		Title:   "new title",
		Content: "new content",
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", note.Title)
	assert.Equal(t, updatedAt, note.UpdatedAt)
}

func TestNoteService_UpdateNote_NotFound(t *testing.T) {
	service, noteRepo := createTestNoteService(t)

	ctx := context.Background()
	noteID := uuid.New()
	ownerID := uuid.New()

	noteRepo.On("Update", ctx, mock.AnythingOfType("*entity.Note")).Return(repository.ErrNoteNotFound)

	note, err := service.UpdateNote(ctx, &usecase.UpdateNoteInput{
		ID:      noteID,
		OwnerID: ownerID,
		Title:   "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, note)
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteService_DeleteNote_Success(t *testing.T) {
	service, noteRepo := createTestNoteService(t)

	ctx := context.Background()
	noteID := uuid.New()
	ownerID := uuid.New()

	noteRepo.On("DeleteByIDAndOwner", ctx, noteID, ownerID).Return(nil)

	require.NoError(t, service.DeleteNote(ctx, noteID, ownerID))
	noteRepo.AssertExpectations(t)
}

func TestNoteService_DeleteNote_NotFound(t *testing.T) {
	service, noteRepo := createTestNoteService(t)

	ctx := context.Background()
	noteID := uuid.New()
	ownerID := uuid.New()

	noteRepo.On("DeleteByIDAndOwner", ctx, noteID, ownerID).Return(repository.ErrNoteNotFound)

	err := service.DeleteNote(ctx, noteID, ownerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}
