package middleware

import (
	"context"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/shared/response"
)

// StaffLookup reports whether a user currently holds staff rights
type StaffLookup interface {
	IsStaff(ctx context.Context, userID uuid.UUID) (bool, error)
}

// StaffOnly requires a staff user. Must run after AuthMiddleware.
// Staff status is read at request time, the token claim is not trusted for it.
func StaffOnly(lookup StaffLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		staff, err := lookup.IsStaff(c.Request.Context(), userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID.String()).Msg("staff lookup failed")
			response.Forbidden(c, "You do not have permission to perform this action.")
			c.Abort()
			return
		}

		if !staff {
			response.Forbidden(c, "You do not have permission to perform this action.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RoleLookup resolves the current profile role of a user
type RoleLookup interface {
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

// RequireRole allows the request only when the caller's profile role is one of roles.
// The role is read at request time so a role change applies to existing tokens.
func RequireRole(lookup RoleLookup, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		role, err := lookup.GetRole(c.Request.Context(), userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID.String()).Msg("role lookup failed")
			response.Forbidden(c, "You do not have permission to perform this action.")
			c.Abort()
			return
		}

		if !slices.Contains(roles, role) {
			response.Forbidden(c, "You do not have permission to perform this action.")
			c.Abort()
			return
		}

		c.Set("role", role)
		c.Next()
	}
}
