package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"dash/config"
	"dash/internal/delivery/http/middleware"
	"dash/internal/delivery/http/router/handler"
	"dash/internal/delivery/http/validator"
	"dash/internal/domain/entity"
	"dash/internal/domain/repository"
	"dash/internal/infra/auth"
	"dash/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore backs the in-memory repositories used by the flow tests.
// A single clock counter keeps updated_at ordering deterministic.
type memoryStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
	notes map[uuid.UUID]entity.Note
	tick  int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[uuid.UUID]entity.User),
		notes: make(map[uuid.UUID]entity.Note),
	}
}

func (s *memoryStore) now() time.Time {
	s.tick++

	return time.Unix(1700000000, 0).Add(time.Duration(s.tick) * time.Second)
}

// deleteUser simulates account removal behind the API's back.
func (s *memoryStore) deleteUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type memoryUserRepository struct{ store *memoryStore }

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			u := user

			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = uuid.New()
	now := r.store.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = *user

	return nil
}

type memoryNoteRepository struct{ store *memoryStore }

func (r *memoryNoteRepository) Create(_ context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note.ID = uuid.New()
	now := r.store.now()
	note.CreatedAt = now
	note.UpdatedAt = now
	r.store.notes[note.ID] = *note

	return nil
}

func (r *memoryNoteRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var notes []*entity.Note
	for _, note := range r.store.notes {
		if note.OwnerID == ownerID {
			n := note
			notes = append(notes, &n)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

func (r *memoryNoteRepository) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note, ok := r.store.notes[id]
	if !ok || note.OwnerID != ownerID {
		return nil, repository.ErrNoteNotFound
	}

	return &note, nil
}

func (r *memoryNoteRepository) Update(_ context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.notes[note.ID]
	if !ok || stored.OwnerID != note.OwnerID {
		return repository.ErrNoteNotFound
	}

	stored.Title = note.Title
	stored.Content = note.Content
	stored.UpdatedAt = r.store.now()
	r.store.notes[note.ID] = stored
	note.UpdatedAt = stored.UpdatedAt

	return nil
}

func (r *memoryNoteRepository) DeleteByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note, ok := r.store.notes[id]
	if !ok || note.OwnerID != ownerID {
		return repository.ErrNoteNotFound
	}
	delete(r.store.notes, id)

	return nil
}

type memoryFactory struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
}

func (f *memoryFactory) UserRepo() repository.UserRepository { return f.userRepo }
func (f *memoryFactory) NoteRepo() repository.NoteRepository { return f.noteRepo }

// memoryTransactionManager runs the callback directly; the in-memory store
// has no transactional semantics to enforce.
type memoryTransactionManager struct{ factory *memoryFactory }

func (tm *memoryTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

type apiFixture struct {
	echo  *echo.Echo
	store *memoryStore
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	store := newMemoryStore()
	userRepo := &memoryUserRepository{store: store}
	noteRepo := &memoryNoteRepository{store: store}
	txManager := &memoryTransactionManager{factory: &memoryFactory{userRepo: userRepo, noteRepo: noteRepo}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.JWT.Secret = "flow-test-secret"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.AccessTokenTTL = time.Hour

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	noteUsecase := impl.NewNoteService(impl.NoteServiceParams{
		NoteRepo: noteRepo,
		Logger:   logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUsecase, logger),
		NoteHandler:    handler.NewNoteHandler(noteUsecase, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authUsecase),
	})
	router.RegisterRoutes(e)

	return &apiFixture{echo: e, store: store}
}

func (f *apiFixture) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func (f *apiFixture) registerAndLogin(t *testing.T, name, email, password string) (token, userID string) {
	t.Helper()

	rec := f.request(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	userID = decodeJSON(t, rec)["user_id"].(string)

	rec = f.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token = decodeJSON(t, rec)["access_token"].(string)

	return token, userID
}

func TestAPI_RegisterLoginAndNoteFlow(t *testing.T) {
	f := newAPIFixture(t)

	// Register.
	rec := f.request(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registerBody := decodeJSON(t, rec)
	assert.NotEmpty(t, registerBody["message"])
	userID, err := uuid.Parse(registerBody["user_id"].(string))
	require.NoError(t, err)

	// The response never carries the password or its hash.
	assert.NotContains(t, rec.Body.String(), "password")

	// Login.
	rec = f.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loginBody := decodeJSON(t, rec)
	token := loginBody["access_token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "bearer", loginBody["token_type"])
	user := loginBody["user"].(map[string]any)
	assert.Equal(t, userID.String(), user["user_id"])
	assert.Equal(t, "Alice", user["user_name"])
	assert.Equal(t, "alice@example.com", user["user_email"])

	// Create a note.
	rec = f.request(t, http.MethodPost, "/notes/", token, map[string]string{
		"title": "groceries", "content": "milk",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeJSON(t, rec)
	noteID := created["id"].(string)
	assert.Equal(t, "groceries", created["title"])
	assert.Equal(t, userID.String(), created["owner_id"])

	// Read it back.
	rec = f.request(t, http.MethodGet, "/notes/"+noteID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "milk", decodeJSON(t, rec)["content"])

	// Update it.
	rec = f.request(t, http.MethodPut, "/notes/"+noteID, token, map[string]string{
		"title": "groceries", "content": "milk and eggs",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "milk and eggs", decodeJSON(t, rec)["content"])

	// Delete it.
	rec = f.request(t, http.MethodDelete, "/notes/"+noteID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Gone afterwards.
	rec = f.request(t, http.MethodGet, "/notes/"+noteID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_DuplicateRegistrationKeepsFirstAccount(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "first-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.request(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Mallory", "email": "alice@example.com", "password": "other-password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// The original credentials still work; the duplicate changed nothing.
	rec = f.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "first-password",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "other-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_LoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAPIFixture(t)
	f.registerAndLogin(t, "Alice", "alice@example.com", "password123")

	recUnknown := f.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "password123",
	})
	recWrong := f.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, recUnknown.Body.String(), recWrong.Body.String())
}

func TestAPI_RegistrationValidation(t *testing.T) {
	f := newAPIFixture(t)

	cases := map[string]map[string]string{
		"missing name":   {"email": "a@example.com", "password": "password123"},
		"bad email":      {"name": "Alice", "email": "not-an-email", "password": "password123"},
		"short password": {"name": "Alice", "email": "a@example.com", "password": "short"},
	}
	for name, payload := range cases {
		rec := f.request(t, http.MethodPost, "/auth/register", "", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestAPI_NotesRequireAuthentication(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodGet, "/notes/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.request(t, http.MethodGet, "/notes/", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_NotesAreInvisibleAcrossUsers(t *testing.T) {
	f := newAPIFixture(t)

	aliceToken, _ := f.registerAndLogin(t, "Alice", "alice@example.com", "password123")
	bobToken, _ := f.registerAndLogin(t, "Bob", "bob@example.com", "password456")

	rec := f.request(t, http.MethodPost, "/notes/", aliceToken, map[string]string{
		"title": "secret", "content": "alice only",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	noteID := decodeJSON(t, rec)["id"].(string)

	// Bob sees 404, never 403, on every verb.
	assert.Equal(t, http.StatusNotFound, f.request(t, http.MethodGet, "/notes/"+noteID, bobToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.request(t, http.MethodPut, "/notes/"+noteID, bobToken, map[string]string{"title": "stolen"}).Code)
	assert.Equal(t, http.StatusNotFound, f.request(t, http.MethodDelete, "/notes/"+noteID, bobToken, nil).Code)

	// Bob's listing stays empty; Alice's note is untouched.
	rec = f.request(t, http.MethodGet, "/notes/", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = f.request(t, http.MethodGet, "/notes/"+noteID, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secret", decodeJSON(t, rec)["title"])
}

func TestAPI_ListOrderedByMostRecentUpdate(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.registerAndLogin(t, "Alice", "alice@example.com", "password123")

	rec := f.request(t, http.MethodPost, "/notes/", token, map[string]string{"title": "first"})
	require.Equal(t, http.StatusCreated, rec.Code)
	firstID := decodeJSON(t, rec)["id"].(string)

	rec = f.request(t, http.MethodPost, "/notes/", token, map[string]string{"title": "second"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Touch the first note so it becomes the most recently updated.
	rec = f.request(t, http.MethodPut, "/notes/"+firstID, token, map[string]string{"title": "first", "content": "touched"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.request(t, http.MethodGet, "/notes/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0]["title"])
	assert.Equal(t, "second", notes[1]["title"])
}

func TestAPI_DeletedAccountInvalidatesLiveToken(t *testing.T) {
	f := newAPIFixture(t)
	token, userID := f.registerAndLogin(t, "Alice", "alice@example.com", "password123")

	rec := f.request(t, http.MethodGet, "/notes/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f.store.deleteUser(uuid.MustParse(userID))

	// The token itself is still unexpired; the identity behind it is gone.
	rec = f.request(t, http.MethodGet, "/notes/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_MalformedNoteIDIsNotFound(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.registerAndLogin(t, "Alice", "alice@example.com", "password123")

	rec := f.request(t, http.MethodGet, "/notes/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_HealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeJSON(t, rec)["status"])
}
