package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quilljot/quilljot-be/internal/models"
)

var (
	// ErrNoteNotFound is returned when a note id does not exist. Lookups
	// resolve absence explicitly before any field access.
	ErrNoteNotFound = errors.New("note not found")
	// ErrNotNoteOwner is returned when the acting user does not own the note.
	ErrNotNoteOwner = errors.New("not the note owner")
)

// NoteServiceProvider defines the interface for note services.
type NoteServiceProvider interface {
	ListNotesByOwner(ownerID string) ([]models.Note, error)
	CreateNote(ownerID, title, body, category string) (models.Note, error)
	UpdateNote(id, actorID, title, body, category string) (models.Note, error)
	DeleteNote(id, actorID string) error
}

// NoteService provides business logic for note management.
type NoteService struct {
	db *sql.DB
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *sql.DB) *NoteService {
	return &NoteService{db: db}
}

// scanNote is a helper to scan a note from a row or rows object.
func scanNote(scanner interface{ Scan(...interface{}) error }) (models.Note, error) {
	var note models.Note
	var body, category sql.NullString
	err := scanner.Scan(&note.ID, &note.Title, &body, &category, &note.UserID, &note.CreatedAt)
	if err != nil {
		return note, err
	}
	note.Body = body.String
	note.Category = category.String
	return note, nil
}

// ListNotesByOwner retrieves all notes owned by the given user.
func (s *NoteService) ListNotesByOwner(ownerID string) ([]models.Note, error) {
	rows, err := s.db.Query(
		"SELECT id, title, body, category, user_id, created_at FROM notes WHERE user_id = ? ORDER BY created_at",
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// GetNoteByID retrieves a single note by its ID.
func (s *NoteService) GetNoteByID(id string) (models.Note, error) {
	row := s.db.QueryRow("SELECT id, title, body, category, user_id, created_at FROM notes WHERE id = ?", id)
	note, err := scanNote(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

// CreateNote persists a new note owned by ownerID.
func (s *NoteService) CreateNote(ownerID, title, body, category string) (models.Note, error) {
	note := models.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		Category:  category,
		UserID:    ownerID,
		CreatedAt: time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO notes(id, title, body, category, user_id, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Note{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(note.ID, note.Title, note.Body, note.Category, note.UserID, note.CreatedAt)
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// UpdateNote overwrites the note's fields after confirming the note exists
// and actorID owns it. Ownership is checked against the stored record, never
// against caller-supplied data.
func (s *NoteService) UpdateNote(id, actorID, title, body, category string) (models.Note, error) {
	note, err := s.GetNoteByID(id)
	if err != nil {
		return models.Note{}, err
	}
	if note.UserID != actorID {
		return models.Note{}, ErrNotNoteOwner
	}

	stmt, err := s.db.Prepare("UPDATE notes SET title = ?, body = ?, category = ? WHERE id = ?")
	if err != nil {
		return models.Note{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(title, body, category, id); err != nil {
		return models.Note{}, err
	}
	return s.GetNoteByID(id)
}

// DeleteNote removes the note after the same existence and ownership checks
// as UpdateNote.
func (s *NoteService) DeleteNote(id, actorID string) error {
	note, err := s.GetNoteByID(id)
	if err != nil {
		return err
	}
	if note.UserID != actorID {
		return ErrNotNoteOwner
	}

	_, err = s.db.Exec("DELETE FROM notes WHERE id = ?", id)
	return err
}
