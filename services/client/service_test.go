package client_test

import (
	"context"
	"testing"

	clientRepo "caredesk/database/repository/client"
	"caredesk/models"
	"caredesk/services/access"
	"caredesk/services/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClientRepo struct {
	records map[string]access.Record
}

func (s *stubClientRepo) GetByID(id string) (access.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return rec, nil
}

func (s *stubClientRepo) GetAll() ([]access.Record, error) {
	out := make([]access.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out, nil
}

func (s *stubClientRepo) Create(access.Record) error         { return nil }
func (s *stubClientRepo) Update(string, access.Record) error { return nil }

func ctxWithRole(role access.Role) context.Context {
	return access.ContextWithIdentity(context.Background(), access.Identity{
		Principal: models.Principal{ID: "caller"},
		Role:      role,
	})
}

func testClientService() client.ClientService {
	return &client.DefaultClientService{Repo: &stubClientRepo{
		records: map[string]access.Record{
			"c1": {
				"id":     "c1",
				"name":   "Ada L",
				"active": true,
				"phone":  "555-0100",
				"medical": map[string]any{
					"diagnosis": "F41.1",
				},
				"billing": map[string]any{
					"cardNumber":     "4111111111111111",
					"cardExpiration": "12/27",
					"paymentOption":  "Insurance",
					"provider":       "Aetna",
					"planName":       "PPO",
				},
				"insurance": map[string]any{"memberId": "M-1"},
			},
		},
	}}
}

func TestListClientsViewerProjection(t *testing.T) {
	svc := testClientService()

	records, err := svc.ListClients(ctxWithRole(access.RoleViewer))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, access.Record{"id": "c1", "name": "Ada L", "active": true}, records[0])
}

func TestGetClientTherapistStripsBilling(t *testing.T) {
	svc := testClientService()

	rec, err := svc.GetClient(ctxWithRole(access.RoleTherapist), "c1")
	require.NoError(t, err)
	assert.NotContains(t, rec, "billing")
	assert.Contains(t, rec, "medical")
}

func TestGetClientViewerDenied(t *testing.T) {
	svc := testClientService()

	_, err := svc.GetClient(ctxWithRole(access.RoleViewer), "c1")
	assert.ErrorIs(t, err, access.ErrUnauthorized)
}

func TestGetClientBillingTherapistSummary(t *testing.T) {
	svc := testClientService()

	rec, err := svc.GetClientBilling(ctxWithRole(access.RoleTherapist), "c1")
	require.NoError(t, err)
	assert.Equal(t, access.Record{
		"paymentOption": "Insurance",
		"provider":      "Aetna",
		"planName":      "PPO",
	}, rec)
}

func TestGetClientBillingAssociateDenied(t *testing.T) {
	svc := testClientService()

	_, err := svc.GetClientBilling(ctxWithRole(access.RoleAssociate), "c1")
	assert.ErrorIs(t, err, access.ErrUnauthorized)
}

func TestGetClientMissingIdentity(t *testing.T) {
	svc := testClientService()

	_, err := svc.GetClient(context.Background(), "c1")
	assert.ErrorIs(t, err, access.ErrUnauthenticated)
}

func TestGetClientNotFound(t *testing.T) {
	svc := testClientService()

	_, err := svc.GetClient(ctxWithRole(access.RoleAdmin), "missing")
	assert.ErrorIs(t, err, clientRepo.ErrClientNotFound)
}
