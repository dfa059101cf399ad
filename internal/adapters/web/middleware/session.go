package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
)

type contextKey string

// SessionContextKey carries the resolved session id through the request
// context.
const SessionContextKey contextKey = "session_id"

// SessionHeader is the client-facing header carrying the opaque token.
const SessionHeader = "x-session-id"

// Session resolves the x-session-id header (generating a fresh token when
// absent or malformed), echoes it on the response, touches the presence
// tracker and stores the id in the request context.
func Session(tracker ports.PresenceTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := r.Header.Get(SessionHeader)
			if !domain.IsValidSessionID(sid) {
				sid = uuid.NewString()
			}
			w.Header().Set(SessionHeader, sid)

			if err := tracker.Touch(r.Context(), sid); err != nil {
				// Liveness is best-effort; the request proceeds regardless.
				log.Printf("Presence touch failed for session %s: %v", sid, err)
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID extracts the session id placed by the Session middleware.
func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(SessionContextKey).(string)
	return sid
}
