package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/domain/person"
	"gymkeep/internal/infrastructure/auth"
	"gymkeep/internal/shared/authorization"
	"gymkeep/internal/shared/constants"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
	"gymkeep/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	personRepo person.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, personRepo person.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		personRepo: personRepo,
		logger:     logger,
	}
}

// RequireAuth authenticates the request from the access token cookie, with
// an Authorization header fallback for API clients. The response to an
// unauthenticated request carries a safe resume target so the client can
// come back to the page it was after once logged in.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				m.unauthorized(c, "authentication required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				m.unauthorized(c, "invalid authorization header format")
				return
			}
			token = parts[1]
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			m.unauthorized(c, "invalid or expired token")
			return
		}

		p, err := m.personRepo.GetByIdentityID(c.Request.Context(), claims.IdentityID)
		if err != nil {
			m.logger.Errorw("failed to load person for identity", "error", err,
				"identity_id", claims.IdentityID)
			m.unauthorized(c, "invalid or expired token")
			return
		}
		if p == nil || !p.Active() {
			m.unauthorized(c, "account is disabled")
			return
		}

		c.Set(constants.ContextKeyIdentityID, claims.IdentityID)
		c.Set(constants.ContextKeyPersonID, p.ID())
		c.Set(constants.ContextKeyRole, string(claims.Role))
		c.Set(constants.ContextKeySessionID, claims.SessionID)

		c.Next()
	}
}

// RequireRole rejects callers whose role does not satisfy the required
// one. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(required authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CallerRole(c)
		if !ok {
			m.unauthorized(c, "authentication required")
			return
		}

		if !role.Satisfies(required) {
			m.logger.Warnw("insufficient role for request",
				"path", c.Request.URL.Path, "role", role.String(), "required", required.String())
			utils.ErrorResponseWithError(c, apperrors.NewForbiddenError("insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) unauthorized(c *gin.Context, message string) {
	next := authorization.SafeNextTarget(c.Request.URL.RequestURI())
	utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError(message, "next="+next))
	c.Abort()
}

// CallerIdentityID returns the authenticated identity's ID.
func CallerIdentityID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyIdentityID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CallerPersonID returns the authenticated caller's person record ID.
func CallerPersonID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyPersonID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CallerRole returns the authenticated caller's role.
func CallerRole(c *gin.Context) (authorization.Role, bool) {
	value, exists := c.Get(constants.ContextKeyRole)
	if !exists {
		return "", false
	}
	raw, ok := value.(string)
	if !ok {
		return "", false
	}
	return authorization.ParseRole(raw)
}
