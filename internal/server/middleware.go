package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VitorVA6/fullstack-part4/internal/api/repository"
	"github.com/VitorVA6/fullstack-part4/internal/api/response"
	"github.com/VitorVA6/fullstack-part4/internal/auth"
)

const bearerPrefix = "Bearer "

// RequireUser resolves the request identity from the Authorization
// header. The token is verified, then the user is re-read from the
// store so downstream handlers observe current state; a stale token for
// a deleted account fails here.
func RequireUser(tokens *auth.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Error(c, http.StatusUnauthorized, auth.ErrMissingToken.Error())
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrMalformedToken) {
				response.Error(c, http.StatusUnauthorized, err.Error())
				return
			}
			slog.Error("failed to verify token", "error", err)
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			slog.Error("failed to resolve token user", "error", err)
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if user == nil {
			response.Error(c, http.StatusUnauthorized, auth.ErrUnknownUser.Error())
			return
		}

		auth.SetCurrentUser(c, user)
		c.Next()
	}
}

// RequestLogger logs each request through slog, which fans out to the
// console and the telemetry bridge.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
