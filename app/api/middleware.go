package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/security"
)

const (
	// VisitorTokenHeader carries the visitor token in both directions.
	VisitorTokenHeader = "X-Visitor-Token"

	visitorIDKey = "visitorID"
)

// VisitorMiddleware identifies the anonymous visitor behind a request.
// A missing, expired or unreadable token is replaced by a fresh one for a new
// visitor; the current token is always echoed back in VisitorTokenHeader.
func VisitorMiddleware(tokenMaker security.Maker, ttl time.Duration, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(VisitorTokenHeader)
		if token != "" {
			payload, err := tokenMaker.VerifyToken(token)
			if err == nil {
				c.Set(visitorIDKey, payload.VisitorID)
				c.Header(VisitorTokenHeader, token)
				c.Next()
				return
			}
			if !errors.Is(err, security.ErrExpiredToken) && log != nil {
				log.Debug("discarding visitor token", map[string]interface{}{"error": err.Error()})
			}
		}

		visitorID := uuid.New()
		token, _, err := tokenMaker.CreateToken(visitorID, ttl)
		if err != nil {
			if log != nil {
				log.Error(err, map[string]interface{}{"action": "issue visitor token"})
			}
			InternalErrorResponse(c, "Could not identify visitor")
			c.Abort()
			return
		}

		c.Set(visitorIDKey, visitorID)
		c.Header(VisitorTokenHeader, token)
		c.Next()
	}
}

// VisitorID returns the visitor set by VisitorMiddleware.
func VisitorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(visitorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// SetVisitorID stores id on the context as VisitorMiddleware does.
func SetVisitorID(c *gin.Context, id uuid.UUID) {
	c.Set(visitorIDKey, id)
}
