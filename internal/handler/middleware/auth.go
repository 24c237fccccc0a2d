package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hotel-console/internal/domain/user"
	"hotel-console/internal/handler/httperr"
	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/cookie"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/pkg/jwt"
	"hotel-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOperatorKey = "operator"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth admits requests carrying an API token and forwards that token on
// every API call the request makes.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Access token required", nil)
			return
		}

		op, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				msg = "Token expired"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		c.Set(ctxOperatorKey, op)
		c.Set("jwt_claims", map[string]any{
			"username": op.Username,
			"roles":    rolesString(op.Roles),
		})
		c.Request = c.Request.WithContext(gateway.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		op, ok := GetOperator(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrSessionNotFound, "Internal server error", nil)
			return
		}

		for _, r := range op.Roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbiddenRole, "Insufficient permissions", nil)
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func rolesString(roles []user.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

func GetOperator(c *gin.Context) (*usecase.Operator, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return nil, false
	}
	op, ok := v.(*usecase.Operator)
	return op, ok
}
