package middleware

import (
	"errors"
	"net/http"
	"strings"

	"parasport/games-api/config"
	"parasport/games-api/pkg/security"

	"github.com/gin-gonic/gin"
)

// NewJWTMiddleware guards a route behind a bearer token. Requests
// without a token, with a tampered or malformed token, or with an
// expired one are all rejected with 401 before the handler runs. On
// success the embedded user ID is set as userID for the handler.
func NewJWTMiddleware(auth *config.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authentication token is missing",
				"requestID": requestID,
			})
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			// The original clients send the bare token without a scheme,
			// keep accepting that
			tokenStr = header
		}

		userID, err := security.ParseAuthToken(strings.TrimSpace(tokenStr), auth.Secret)
		if err != nil {
			msg := "Token is invalid"
			if errors.Is(err, security.ErrTokenExpired) {
				msg = "Token expired"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     msg,
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
