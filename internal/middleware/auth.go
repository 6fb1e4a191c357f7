package middleware

import (
	"errors"
	"fmt"
	"strings"

	"balatro-spectator/internal/config"
	pkgAuth "balatro-spectator/pkg/auth"
	appErr "balatro-spectator/pkg/errors"
	"balatro-spectator/pkg/response"

	"github.com/gin-gonic/gin"
)

const ContextClientKey = "client"

// AuthRequired checks the bearer token when jwt.secret is configured and lets
// every request through otherwise. Websocket clients may pass ?token= since
// browsers cannot set headers on the upgrade request.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.GlobalConfig == nil || config.GlobalConfig.JWT.Secret == "" {
			c.Next()
			return
		}

		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			token = c.Query("token")
		}
		if token == "" {
			msg := "missing token"
			if err != nil {
				msg = err.Error()
			}
			response.FromError(c, fmt.Errorf("%w: %s", appErr.ErrUnauthorized, msg))
			c.Abort()
			return
		}

		claims, err := pkgAuth.ParseToken(token)
		if err != nil {
			response.FromError(c, fmt.Errorf("%w: invalid token", appErr.ErrUnauthorized))
			c.Abort()
			return
		}

		c.Set(ContextClientKey, claims.Client)
		c.Next()
	}
}

func extractBearerToken(authHeader string) (string, error) {
	if strings.TrimSpace(authHeader) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
