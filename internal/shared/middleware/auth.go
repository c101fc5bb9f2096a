package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/shared/response"
	"bookclub-backend/pkg/jwt"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextClaims   = "claims"
)

// RevocationChecker reports whether a token id was revoked (logout)
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token
func AuthMiddleware(jwtManager *jwt.Manager, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		claims, err := authenticate(c, jwtManager, revoked, token)
		if errors.Is(err, errRevocationUnavailable) {
			response.ErrorResponse(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", err.Error())
			c.Abort()
			return
		}
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present and lets anonymous requests through
func OptionalAuth(jwtManager *jwt.Manager, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := authenticate(c, jwtManager, revoked, token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

type authError string

func (e authError) Error() string { return string(e) }

const (
	errInvalidToken authError = "Invalid or expired token."
	errRevoked      authError = "Token has been revoked."

	errRevocationUnavailable authError = "Unable to verify token, try again later."
)

func authenticate(c *gin.Context, jwtManager *jwt.Manager, revoked RevocationChecker, token string) (*jwt.Claims, error) {
	claims, err := jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, errInvalidToken
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, errInvalidToken
	}

	if revoked != nil {
		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Error().Err(err).Str("jti", claims.ID).Msg("revocation check failed")
			return nil, errRevocationUnavailable
		}
		if isRevoked {
			return nil, errRevoked
		}
	}

	return claims, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextUserID, uuid.MustParse(claims.UserID))
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextClaims, claims)
}

// ========================================
// CONTEXT HELPERS
// ========================================

// GetUserID returns the authenticated user id, false for anonymous requests
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
