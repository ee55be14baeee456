// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"dash/internal/domain/entity"
	domainusecase "dash/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *domainusecase.RegisterInput) (*domainusecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*domainusecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *domainusecase.LoginInput) (*domainusecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*domainusecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	args := m.Called(ctx, accessToken)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockNoteUsecase is a testify mock for usecase.NoteUsecase.
type MockNoteUsecase struct {
	mock.Mock
}

func (m *MockNoteUsecase) CreateNote(ctx context.Context, input *domainusecase.CreateNoteInput) (*entity.Note, error) {
	args := m.Called(ctx, input)
	if note, ok := args.Get(0).(*entity.Note); ok {
		return note, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNoteUsecase) ListNotes(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	args := m.Called(ctx, ownerID)
	if notes, ok := args.Get(0).([]*entity.Note); ok {
		return notes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNoteUsecase) GetNote(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error) {
	args := m.Called(ctx, id, ownerID)
	if note, ok := args.Get(0).(*entity.Note); ok {
		return note, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNoteUsecase) UpdateNote(ctx context.Context, input *domainusecase.UpdateNoteInput) (*entity.Note, error) {
	args := m.Called(ctx, input)
	if note, ok := args.Get(0).(*entity.Note); ok {
		return note, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNoteUsecase) DeleteNote(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}
