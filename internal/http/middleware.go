package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujalbistaa/postpilot/internal/session"
)

const sessionContextKey = "postpilot.session"

// SecurityHeadersMiddleware adds basic, sensible security headers.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	// Tailwind's play CDN injects its generated styles inline.
	csp := "default-src 'self';"
	csp += " script-src 'self' cdn.tailwindcss.com;"
	csp += " style-src 'self' 'unsafe-inline';"
	csp += " form-action 'self';"

	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", csp)
		c.Next()
	}
}

// SessionMiddleware attaches the browser's form session, starting one and
// setting the cookie when the request carries none or an unknown id.
func SessionMiddleware(sessions *session.Registry, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s *session.Session
		if id, err := c.Cookie(cookieName); err == nil {
			s, _ = sessions.Lookup(id)
		}
		if s == nil {
			var id string
			id, s = sessions.Start()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, id, 0, "/", "", false, true)
			log.Printf("[SESSION] started %s for %s", id, c.ClientIP())
		}
		c.Set(sessionContextKey, s)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionContextKey).(*session.Session)
}

// respondError sends the error in a uniform shape and stops the chain.
func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
