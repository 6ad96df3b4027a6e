package notesRepo

import (
	"errors"

	"caredesk/services/access"
)

// ErrNoteNotFound signals a missing note record.
var ErrNoteNotFound = errors.New("note not found")

// NotesRepository defines methods for therapy note access. Notes are
// free-form documents; the sensitivity filter shapes them at the boundary.
type NotesRepository interface {
	// GetByID retrieves a note by its unique ID.
	GetByID(id string) (access.Record, error)
	// GetByClientID retrieves all notes for a client, newest first.
	GetByClientID(clientID string) ([]access.Record, error)
	// GetAll retrieves all notes, newest first.
	GetAll() ([]access.Record, error)
	// Create inserts a new note record.
	Create(record access.Record) error
}
