package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCookie attaches the session token to the response. HttpOnly and
// SameSite=Lax; no Max-Age so the browser discards it when the client
// session ends.
func SetCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest resolves the current session, if any, from the request cookie.
func FromRequest(c *gin.Context, store Store) (Session, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return store.Get(token)
}
