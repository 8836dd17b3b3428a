// Package session holds the server-side authenticated state tied to a
// client through an opaque cookie token. The store is injected wherever
// session state is read or written; nothing in the package is ambient.
package session

import (
	"time"

	"github.com/google/uuid"

	"personnel-api/src/model"
)

// CookieName is the client-side token cookie. No Max-Age is set, so the
// cookie dies with the browser session.
const CookieName = "sid"

// Session is the authenticated state established at login: the employee's
// CURP and the role resolved for it. Roles are resolved once, here, and
// never re-derived per request.
type Session struct {
	CURP      string
	Role      model.RoleKind
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store is the session registry. Get reports whether a live session exists
// for the token; Put registers one; Clear removes it (logout).
type Store interface {
	Get(token string) (Session, bool)
	Put(token string, s Session)
	Clear(token string)
}

// Issue registers a fresh session for the given identity and returns the
// opaque token to hand to the client.
func Issue(store Store, curp string, role model.RoleKind) string {
	token := uuid.NewString()
	store.Put(token, Session{CURP: curp, Role: role})
	return token
}
