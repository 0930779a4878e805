package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "elevate_session"
const CookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// SessionMiddleware tags every request with a session identifier. Clients
// that send an explicit session_id in the chat body take precedence over
// the cookie; this only guarantees a stable fallback identity.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err == http.ErrNoCookie || cookie == "" {
			cookie = uuid.NewString()
			c.SetCookie(SessionCookieName, cookie, CookieMaxAge, "/", "", false, true)
		}

		c.Set("sessionID", cookie)
		c.Next()
	}
}
