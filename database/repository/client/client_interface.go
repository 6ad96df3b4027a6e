package clientRepo

import (
	"errors"

	"caredesk/services/access"
)

// ErrClientNotFound signals a missing client record.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines methods for client record access. Client records
// are free-form documents synced from the practice's intake sheet, so they
// are surfaced as raw records and shaped by the sensitivity filter at the
// boundary.
type ClientRepository interface {
	// GetByID retrieves a client record by its unique ID.
	GetByID(id string) (access.Record, error)
	// GetAll retrieves all client records.
	GetAll() ([]access.Record, error)
	// Create inserts a new client record.
	Create(record access.Record) error
	// Update replaces an existing client record.
	Update(id string, record access.Record) error
}
