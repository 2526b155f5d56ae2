package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/internal/auth"
)

const ctxUserID = "user_id"

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// requireAuth resolves the session cookie; browsers get redirected to
// /login, JSON endpoints get a 401.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err == nil {
			if userID, ok := s.auth.Authenticate(token); ok {
				c.Set(ctxUserID, userID)
				c.Next()
				return
			}
		}
		if wantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

func currentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(ctxUserID)
	id, _ := v.(uuid.UUID)
	return id
}

func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("Accept") == "application/json" {
		return true
	}
	p := c.Request.URL.Path
	return len(p) >= 5 && p[:5] == "/jobs"
}
