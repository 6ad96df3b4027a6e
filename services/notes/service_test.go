package notes_test

import (
	"context"
	"testing"

	notesRepo "caredesk/database/repository/notes"
	"caredesk/models"
	"caredesk/services/access"
	"caredesk/services/notes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotesRepo struct {
	byID    map[string]access.Record
	created []access.Record
}

func (s *stubNotesRepo) GetByID(id string) (access.Record, error) {
	rec, ok := s.byID[id]
	if !ok {
		return nil, notesRepo.ErrNoteNotFound
	}
	return rec, nil
}

func (s *stubNotesRepo) GetByClientID(clientID string) ([]access.Record, error) {
	out := make([]access.Record, 0)
	for _, rec := range s.byID {
		if rec["clientId"] == clientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubNotesRepo) GetAll() ([]access.Record, error) {
	out := make([]access.Record, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec)
	}
	return out, nil
}

func (s *stubNotesRepo) Create(record access.Record) error {
	s.created = append(s.created, record)
	return nil
}

func ctxWithIdentity(role access.Role) context.Context {
	return access.ContextWithIdentity(context.Background(), access.Identity{
		Principal: models.Principal{ID: "caller", Email: "t@example.com"},
		Role:      role,
	})
}

func testNotesService() (*notes.DefaultNotesService, *stubNotesRepo) {
	repo := &stubNotesRepo{byID: map[string]access.Record{
		"n1": {
			"id":            "n1",
			"clientId":      "c1",
			"subject":       "Session 4",
			"body":          "detailed clinical narrative",
			"timestamp":     "2026-08-01T10:00:00Z",
			"therapistName": "Dr. B",
		},
	}}
	return &notes.DefaultNotesService{Repo: repo}, repo
}

func TestListNotesViewerSeesHeadersOnly(t *testing.T) {
	svc, _ := testNotesService()

	records, err := svc.ListNotes(ctxWithIdentity(access.RoleViewer), "c1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotContains(t, records[0], "body")
	assert.Equal(t, "Session 4", records[0]["subject"])
}

func TestGetNoteViewerDenied(t *testing.T) {
	svc, _ := testNotesService()

	_, err := svc.GetNote(ctxWithIdentity(access.RoleViewer), "n1")
	assert.ErrorIs(t, err, access.ErrUnauthorized)
}

func TestGetNoteTherapistFullDetail(t *testing.T) {
	svc, _ := testNotesService()

	rec, err := svc.GetNote(ctxWithIdentity(access.RoleTherapist), "n1")
	require.NoError(t, err)
	assert.Equal(t, "detailed clinical narrative", rec["body"])
}

func TestCreateNoteStampsAuthor(t *testing.T) {
	svc, repo := testNotesService()

	rec, err := svc.CreateNote(ctxWithIdentity(access.RoleAssociate), models.NoteInput{
		ClientID: "c1",
		Subject:  "Session 5",
		Body:     "progress update",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "caller", rec["authorId"])
	assert.NotEmpty(t, rec["id"])
	assert.NotNil(t, rec["timestamp"])
}

func TestNotesMissingIdentity(t *testing.T) {
	svc, _ := testNotesService()

	_, err := svc.ListNotes(context.Background(), "")
	assert.ErrorIs(t, err, access.ErrUnauthenticated)
}
