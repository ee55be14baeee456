package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dash/internal/delivery/http/response"
	"dash/internal/domain/entity"
	"dash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// notePayload is the body for creating and updating notes. Both fields
// default to the empty string when omitted.
type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// noteResponse is the JSON view of a note.
type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteHandler holds dependencies for note-related handlers.
type NoteHandler struct {
	uc     usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// currentUserID reads the acting user's ID placed on the context by the
// auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// noteIDParam parses the :id path parameter.
func noteIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// Create handles POST /notes/.
func (h *NoteHandler) Create(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
	}

	var req notePayload
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid note input")
	}

	note, err := h.uc.CreateNote(c.Request().Context(), &usecase.CreateNoteInput{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

// List handles GET /notes/. Notes are returned most recently updated first.
func (h *NoteHandler) List(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
	}

	notes, err := h.uc.ListNotes(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, toNoteResponse(note))
	}

	return c.JSON(http.StatusOK, out)
}

// Get handles GET /notes/:id.
func (h *NoteHandler) Get(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		// A malformed ID can never name an existing note.
		return response.NotFound(c, "NOTE_NOT_FOUND", "note not found")
	}

	note, err := h.uc.GetNote(c.Request().Context(), noteID, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Update handles PUT /notes/:id. Title and content are overwritten in full.
func (h *NoteHandler) Update(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return response.NotFound(c, "NOTE_NOT_FOUND", "note not found")
	}

	var req notePayload
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid note input")
	}

	note, err := h.uc.UpdateNote(c.Request().Context(), &usecase.UpdateNoteInput{
		ID:      noteID,
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /notes/:id.
func (h *NoteHandler) Delete(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "not authenticated")
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return response.NotFound(c, "NOTE_NOT_FOUND", "note not found")
	}

	if err := h.uc.DeleteNote(c.Request().Context(), noteID, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toNoteResponse(note *entity.Note) noteResponse {
	return noteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		OwnerID:   note.OwnerID.String(),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
