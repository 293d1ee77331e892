package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dkravets/libshelf/internal/server/auth"
)

const (
	// ContextUserIDKey is the gin context key carrying the authenticated
	// user's identifier for downstream handlers.
	ContextUserIDKey = "auth.user_id"

	requestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an id, reusing the caller's header value
// when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set(requestIDHeader, id)
		c.Next()
	}
}

// RequireAuth validates the Bearer access token and attaches the bound user
// id to the request context. Missing, malformed, expired, and tampered
// tokens are all rejected with the same response.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c)
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], secret)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}
