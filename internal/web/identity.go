package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kvellan/gamestore/internal/cart/domain"
)

const identityKey = "gamestore.identity"

// userHeader carries the authenticated user id, stamped by the identity
// provider in front of this service. Auth itself is not handled here.
const userHeader = "X-User-ID"

// IdentityMiddleware resolves who is calling: an anonymous browser session
// (cookie, minted on first contact) or a logged-in user (header). The
// resulting Identity is what every cart operation is scoped by.
func IdentityMiddleware(cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(cookieName, sid, int(ttl.Seconds()), "/", "", false, true)
		}

		c.Set(identityKey, domain.Identity{
			UserID:    c.GetHeader(userHeader),
			SessionID: sid,
		})

		c.Next()
	}
}

// Identity returns the caller identity stored by IdentityMiddleware.
func Identity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}
