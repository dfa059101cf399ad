package domain

import (
	"time"
)

// ConnectionRecord tracks the last activity of a client session. At most
// one live record exists per session id; repeated touches refresh
// LastSeen in place. Stale records are removed by the periodic sweep.
type ConnectionRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	LastSeen  time.Time `json:"lastSeen"`
}
