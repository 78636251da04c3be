package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/auth"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/constants"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/utils"
)

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	tokens TokenVerifier
	logger logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth rejects requests without a valid bearer token. Expired and
// invalid tokens answer with distinct error types.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing or malformed authorization header"))
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("failed to verify token", "client_ip", c.ClientIP(), "error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth stores the claims of a valid bearer token and ignores everything else.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := m.tokens.Verify(token); err == nil {
				setClaims(c, claims)
			} else {
				m.logger.Debugw("ignoring unusable bearer token", "error", err)
			}
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	// Verify already rejected tokens with an unparsable subject
	userID, _ := claims.UserID()

	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserEmail, claims.Email)
	c.Set(constants.ContextKeyUserRole, claims.Role)
}
