package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"personnel-api/src/model"
	"personnel-api/src/session"
)

// SessionKey is where RequireSession leaves the resolved session for the
// wrapped handler.
const SessionKey = "session"

// RequireSession gates a route behind an authenticated session. Without a
// live session the client is redirected to the login form, not rejected.
// When roles are given, a session holding a different role gets a blunt 403
// with no redirect. With no roles, any authenticated session passes.
func RequireSession(store session.Store, roles ...model.RoleKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session.FromRequest(c, store)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if len(roles) > 0 && !slices.Contains(roles, s.Role) {
			c.String(http.StatusForbidden, "No autorizado")
			c.Abort()
			return
		}

		c.Set(SessionKey, s)
		c.Next()
	}
}

// CurrentSession retrieves the session RequireSession stored on the
// context. The second return is false on routes not behind the guard.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
