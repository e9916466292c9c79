package events

import (
	"encoding/json"
	"time"
)

// TopicAuditLog carries every audit entry emitted by the API. Versioned so a
// payload change can fan out to a new topic without breaking consumers.
const TopicAuditLog = "chms.audit.log.v1"

// AuditEnvelope is the wire form of one audit entry. Attributes holds the
// action-specific fields, already serialized by the producer.
type AuditEnvelope struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	Details    string          `json:"details"`
	Actor      string          `json:"actor"`
	OccurredAt time.Time       `json:"occurred_at"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}
