// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"dash/internal/domain/entity"
	domainrepo "dash/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockNoteRepository is a testify mock for repository.NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)

	return args.Error(0)
}

func (m *MockNoteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	args := m.Called(ctx, ownerID)
	if notes, ok := args.Get(0).([]*entity.Note); ok {
		return notes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNoteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error) {
	args := m.Called(ctx, id, ownerID)
	if note, ok := args.Get(0).(*entity.Note); ok {
		return note, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)

	return args.Error(0)
}

func (m *MockNoteRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) UserRepo() domainrepo.UserRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(domainrepo.UserRepository); ok {
		return repo
	}

	return nil
}

func (m *MockRepositoryFactory) NoteRepo() domainrepo.NoteRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(domainrepo.NoteRepository); ok {
		return repo
	}

	return nil
}

// MockTransactionManager is a testify mock for repository.TransactionManager.
// Execute runs the callback against the configured factory so usecase logic
// inside the transaction still executes in tests.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(domainrepo.RepositoryFactory); ok {
		if err := fn(factory); err != nil {
			return err
		}
	}

	return args.Error(1)
}
