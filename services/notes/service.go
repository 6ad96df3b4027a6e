package notes

import (
	"context"
	"time"

	notesRepo "caredesk/database/repository/notes"
	"caredesk/models"
	"caredesk/services/access"

	"github.com/google/uuid"
)

// NotesService exposes therapy note reads and creation. Reads cross the
// sensitivity filter keyed by the caller's role.
type NotesService interface {
	// ListNotes returns note headers, optionally scoped to one client.
	ListNotes(ctx context.Context, clientID string) ([]access.Record, error)
	// GetNote returns one note in full detail.
	GetNote(ctx context.Context, id string) (access.Record, error)
	// CreateNote records a new note authored by the caller.
	CreateNote(ctx context.Context, input models.NoteInput) (access.Record, error)
}

// DefaultNotesService implements NotesService.
type DefaultNotesService struct {
	Repo notesRepo.NotesRepository
}

// ListNotes returns note headers filtered for the caller.
func (s *DefaultNotesService) ListNotes(ctx context.Context, clientID string) ([]access.Record, error) {
	id, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, access.ErrUnauthenticated
	}
	var (
		records []access.Record
		err     error
	)
	if clientID != "" {
		records, err = s.Repo.GetByClientID(clientID)
	} else {
		records, err = s.Repo.GetAll()
	}
	if err != nil {
		return nil, err
	}
	return access.FilterAllForRole(records, access.CategoryNotesBasic, id.Role), nil
}

// GetNote returns a single note at detailed sensitivity.
func (s *DefaultNotesService) GetNote(ctx context.Context, noteID string) (access.Record, error) {
	id, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, access.ErrUnauthenticated
	}
	record, err := s.Repo.GetByID(noteID)
	if err != nil {
		return nil, err
	}
	filtered := access.FilterForRole(record, access.CategoryNotesDetailed, id.Role)
	if filtered == nil {
		return nil, access.ErrUnauthorized
	}
	return filtered, nil
}

// CreateNote records a new note authored by the caller.
func (s *DefaultNotesService) CreateNote(ctx context.Context, input models.NoteInput) (access.Record, error) {
	id, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, access.ErrUnauthenticated
	}
	record := access.Record{
		"id":            uuid.NewString(),
		"clientId":      input.ClientID,
		"subject":       input.Subject,
		"body":          input.Body,
		"plan":          input.Plan,
		"authorId":      id.Principal.ID,
		"therapistName": id.Principal.Email,
		"timestamp":     time.Now().UTC(),
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}
