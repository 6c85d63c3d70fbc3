package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/quilljot/quilljot-be/internal/auth"
	"github.com/quilljot/quilljot-be/internal/services"
)

// NoteHandler handles HTTP requests for the note endpoint group. Every
// operation scopes to the token-verified identity attached by the auth
// middleware.
type NoteHandler struct {
	service services.NoteServiceProvider
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(service services.NoteServiceProvider) *NoteHandler {
	return &NoteHandler{service: service}
}

// NotePayload defines the structure for create and update requests. UserID is
// accepted for wire compatibility with older clients but never trusted; the
// acting identity always comes from the verified token.
type NotePayload struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	UserID   string `json:"userID"`
}

func actorID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return "", false
	}
	return claims.UserID, true
}

// GetAll handles the request to list the caller's notes.
func (h *NoteHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}

	notes, err := h.service.ListNotesByOwner(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to retrieve notes")
		writeMsg(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notes)
}

// Create handles the request to create a new note owned by the caller.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}

	var payload NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.CreateNote(userID, payload.Title, payload.Body, payload.Category); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create note")
		writeMsg(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeMsg(w, http.StatusCreated, "New Note Created")
}

// Update handles the request to overwrite an existing note's fields.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var payload NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.UpdateNote(id, userID, payload.Title, payload.Body, payload.Category); err != nil {
		h.writeNoteError(w, err, id, userID, "Failed to update note")
		return
	}

	w.Write([]byte("Updated the note"))
}

// Delete handles the request to remove a note by id.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteNote(id, userID); err != nil {
		h.writeNoteError(w, err, id, userID, "Failed to delete note")
		return
	}

	w.Write([]byte("Deleted the note"))
}

// writeNoteError maps service errors to the documented responses: absent note
// to 404, ownership mismatch to 403, anything else to a generic 500.
func (h *NoteHandler) writeNoteError(w http.ResponseWriter, err error, noteID, userID, msg string) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		writeMsg(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, services.ErrNotNoteOwner):
		log.Warn().Str("note_id", noteID).Str("user_id", userID).Msg("Ownership check rejected request")
		writeMsg(w, http.StatusForbidden, "You are not authorized")
	default:
		log.Error().Err(err).Str("note_id", noteID).Str("user_id", userID).Msg(msg)
		writeMsg(w, http.StatusInternalServerError, "Something went wrong")
	}
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
