// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"dash/internal/domain/entity"
	domainerrors "dash/internal/domain/errors"
	"dash/internal/domain/repository"
	"dash/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository implements the domain.NoteRepository interface using GORM.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists a new note entity to the database.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The owning user disappeared between authentication and the insert.
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// ListByOwner returns every note belonging to ownerID, most recently updated first.
func (repo *noteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	var noteMs []model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&noteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes by owner")
	}

	notes := make([]*entity.Note, 0, len(noteMs))
	for i := range noteMs {
		notes = append(notes, toNoteDomain(&noteMs[i]))
	}

	return notes, nil
}

// FindByIDAndOwner retrieves a single note matched on both id and owner.
// A note owned by someone else is reported the same way as a missing note.
func (repo *noteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&noteM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return toNoteDomain(&noteM), nil
}

// Update overwrites title and content of the note matched on (id AND owner)
// and refreshes its updated_at.
func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ? AND owner_id = ?", note.ID, note.OwnerID).
		Updates(map[string]any{
			"title":      note.Title,
			"content":    note.Content,
			"updated_at": now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	note.UpdatedAt = now

	return nil
}

// DeleteByIDAndOwner removes the note matched on both id and owner.
func (repo *noteRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.NoteModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// toNoteDomain converts a GORM NoteModel to a domain Note entity.
func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromNoteDomain converts a domain Note entity to a GORM NoteModel for persistence.
func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:      data.ID,
		OwnerID: data.OwnerID,
		Title:   data.Title,
		Content: data.Content,
	}
}
