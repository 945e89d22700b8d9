// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// ScopeKey is the context key for the resolved data scope.
	ScopeKey ContextKey = "scope"
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
)

// accessTokenQueryParam carries the token for clients that cannot set
// headers, such as browser EventSource connections.
const accessTokenQueryParam = "access_token"

// GuestAccess controls when a request without credentials gets the guest scope.
type GuestAccess struct {
	Enabled bool
	// AllowRemote admits guests connecting from other machines. The guest
	// store belongs to the device running the server, so this is off by default.
	AllowRemote bool
}

// ScopeMiddleware resolves which scope a request reads and writes.
type ScopeMiddleware struct {
	tokenService adapter.TokenService
	guest        GuestAccess
}

// NewScopeMiddleware creates a new scope middleware instance.
func NewScopeMiddleware(tokenService adapter.TokenService, guest GuestAccess) *ScopeMiddleware {
	return &ScopeMiddleware{
		tokenService: tokenService,
		guest:        guest,
	}
}

// Resolve returns a Gin middleware handler that attaches the request scope.
// A valid bearer token selects the user's scope. A request without
// credentials falls back to the guest scope when guest mode is enabled and
// the peer is the local machine.
func (m *ScopeMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		if !present {
			if !m.guest.Enabled {
				abortUnauthorized(c, "Authorization header is required: "+domainerror.ErrGuestModeDisabled.Error(), domainerror.ErrCodeGuestModeDisabled)
				return
			}
			if !m.guest.AllowRemote && !isLoopback(c.RemoteIP()) {
				abortUnauthorized(c, "Authorization header is required: "+domainerror.ErrGuestNotLocal.Error(), domainerror.ErrCodeGuestNotLocal)
				return
			}
			c.Set(string(ScopeKey), entity.GuestScope())
			c.Next()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainerror.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired", domainerror.ErrCodeExpiredToken)
				return
			}
			abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(string(ScopeKey), entity.UserScope(claims.UserID))
		c.Set(string(UserEmailKey), claims.Email)

		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header or the
// access_token query parameter. ok is false when a header is present but malformed.
func bearerToken(c *gin.Context) (token string, present bool, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if token := strings.TrimSpace(c.Query(accessTokenQueryParam)); token != "" {
			return token, true, true
		}
		return "", false, true
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", true, false
	}

	token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", true, false
	}
	return token, true, true
}

// isLoopback reports whether the TCP peer is this machine. Forwarded
// headers are ignored since any client can set them.
func isLoopback(remoteIP string) bool {
	ip := net.ParseIP(remoteIP)
	return ip != nil && ip.IsLoopback()
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}

// GetScopeFromContext extracts the resolved scope from the Gin context.
func GetScopeFromContext(c *gin.Context) (entity.Scope, bool) {
	value, exists := c.Get(string(ScopeKey))
	if !exists {
		return entity.Scope{}, false
	}
	scope, ok := value.(entity.Scope)
	return scope, ok
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}
