package access

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	auditKey        = "audit:authz"
	auditMaxEntries = 1000
)

// AuditEvent records a single authorization denial for the admin audit view.
type AuditEvent struct {
	Timestamp   time.Time    `json:"timestamp"`
	PrincipalID string       `json:"principal_id"`
	Role        Role         `json:"role"`
	Path        string       `json:"path"`
	Permissions []Permission `json:"permissions"`
	Reason      string       `json:"reason"`
}

// AuditTrail persists authorization denials to a capped Redis list.
type AuditTrail struct {
	client *redis.Client
}

// NewAuditTrail creates an AuditTrail over the given Redis client.
func NewAuditTrail(client *redis.Client) *AuditTrail {
	return &AuditTrail{client: client}
}

// Record appends an event and trims the list to its cap.
func (a *AuditTrail) Record(ctx context.Context, event AuditEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}
	pipe := a.client.TxPipeline()
	pipe.LPush(ctx, auditKey, payload)
	pipe.LTrim(ctx, auditKey, 0, auditMaxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}

// Recent returns up to n events, newest first.
func (a *AuditTrail) Recent(ctx context.Context, n int64) ([]AuditEvent, error) {
	if n <= 0 {
		n = 50
	}
	raw, err := a.client.LRange(ctx, auditKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read audit trail: %w", err)
	}
	events := make([]AuditEvent, 0, len(raw))
	for _, item := range raw {
		var event AuditEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
