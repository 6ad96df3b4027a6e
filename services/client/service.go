package client

import (
	"context"

	clientRepo "caredesk/database/repository/client"
	"caredesk/services/access"
)

// ClientService exposes read access to client records. Every result crosses
// the sensitivity filter keyed by the caller's role before it leaves this
// package; handlers never see unfiltered records.
type ClientService interface {
	// ListClients returns the client roster filtered for the caller.
	ListClients(ctx context.Context) ([]access.Record, error)
	// GetClient returns one client's personal record filtered for the caller.
	GetClient(ctx context.Context, id string) (access.Record, error)
	// GetClientBilling returns the billing sub-record filtered for the caller.
	GetClientBilling(ctx context.Context, id string) (access.Record, error)
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

// ListClients returns all client records at roster sensitivity. Records the
// caller may not see are omitted, not errored.
func (s *DefaultClientService) ListClients(ctx context.Context) ([]access.Record, error) {
	id, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, access.ErrUnauthenticated
	}
	records, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return access.FilterAllForRole(records, access.CategoryClientBasic, id.Role), nil
}

// GetClient returns a single client's personal record.
func (s *DefaultClientService) GetClient(ctx context.Context, clientID string) (access.Record, error) {
	id, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, access.ErrUnauthenticated
	}
	record, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	filtered := access.FilterForRole(record, access.CategoryClientPersonal, id.Role)
	if filtered == nil {
		return nil, access.ErrUnauthorized
	}
	return filtered, nil
}

// GetClientBilling returns the billing sub-record of a client, reduced to
// the summary fields the caller's role may see.
func (s *DefaultClientService) GetClientBilling(ctx context.Context, clientID string) (access.Record, error) {
	id, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, access.ErrUnauthenticated
	}
	record, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	billing, _ := record["billing"].(map[string]any)
	if billing == nil {
		return access.Record{}, nil
	}
	filtered := access.FilterForRole(billing, access.CategoryClientFinancial, id.Role)
	if filtered == nil {
		return nil, access.ErrUnauthorized
	}
	return filtered, nil
}
