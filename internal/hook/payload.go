package hook

import (
	"encoding/json"
	"fmt"

	"ctxkeep/internal/store"
)

// Payload is the JSON document the host writes to stdin when it fires the
// pre-compaction hook.
type Payload struct {
	SessionID string          `json:"session_id"`
	Messages  []store.Message `json:"messages"`
	Cwd       string          `json:"cwd"`
}

// ParsePayload decodes a hook payload and applies the documented defaults:
// a missing session_id becomes "unknown", missing messages stay empty. A
// malformed document is reported as an error; the caller logs it and treats
// the run as a no-op.
func ParsePayload(data []byte) (Payload, error) {
	p := Payload{SessionID: "unknown"}
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{SessionID: "unknown"}, fmt.Errorf("parse hook payload: %w", err)
	}
	if p.SessionID == "" {
		p.SessionID = "unknown"
	}
	return p, nil
}
