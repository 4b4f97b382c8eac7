// Package sessionmw provides Gin middleware that resolves the session cookie
// into a caller identity before handler dispatch. It is the explicit
// capability gate for every identity-dependent route: no handler branches on
// identity without the token having passed Resolve first.
package sessionmw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the Gin context key under which the resolved user ID is stored.
const ContextUserID = "userID"

// TokenCookieName is the cookie carrying the opaque session token.
const TokenCookieName = "token"

// LoginRedirectTarget is where page routes send unauthenticated callers.
const LoginRedirectTarget = "/?login=1"

// Resolver resolves an opaque session token to a user ID.
// Following Go convention: the interface is defined by the consumer (middleware), not the provider (usecase).
type Resolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// resolve extracts and resolves the session cookie, returning the user ID or
// an empty string when no valid session is presented.
func resolve(c *gin.Context, r Resolver) string {
	token, err := c.Cookie(TokenCookieName)
	if err != nil || token == "" {
		return ""
	}
	userID, err := r.Resolve(c.Request.Context(), token)
	if err != nil {
		return ""
	}
	return userID
}

// Optional resolves the session cookie when present but never rejects the
// request. Routes with per-resource access control (the watch page) use this:
// the privacy decision belongs to the usecase, not the gate.
func Optional(r Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := resolve(c, r); userID != "" {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

// RequireAPI rejects unauthenticated requests with a structured 401 body.
// Applied to API-class routes (likes, comments).
func RequireAPI(r Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := resolve(c, r)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// RequirePage redirects unauthenticated requests to the login prompt.
// Applied to page-class routes (upload). The split between RequireAPI and
// RequirePage is route-class based, not security based: both gates run the
// same Resolve.
func RequirePage(r Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := resolve(c, r)
		if userID == "" {
			c.Redirect(http.StatusFound, LoginRedirectTarget)
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
