package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bookclub-backend/pkg/cache"
)

const tokenTypeAccess = "access"

// Claims represents JWT claims structure
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	Role     string `json:"role"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret    string
	accessTTL time.Duration
}

// NewManager creates new JWT manager
func NewManager(secret string, accessTTL time.Duration) *Manager {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &Manager{secret: secret, accessTTL: accessTTL}
}

// AccessTTL returns the lifetime of issued access tokens
func (m *Manager) AccessTTL() time.Duration {
	return m.accessTTL
}

// GenerateAccessToken issues a signed access token carrying a unique jti,
// so a single token can be revoked on logout.
func (m *Manager) GenerateAccessToken(userID uuid.UUID, username string, isStaff bool, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID.String(),
		Username: username,
		IsStaff:  isStaff,
		Role:     role,
		Type:     tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ValidateAccessToken validates access token specifically
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != tokenTypeAccess {
		return nil, fmt.Errorf("invalid token type: expected access, got %s", claims.Type)
	}

	return claims, nil
}

// ========================================
// REVOCATION
// ========================================

const revokedKeyPrefix = "auth:revoked:"

// Blacklist keeps revoked token ids in the cache until the token would expire anyway.
type Blacklist struct {
	cache cache.Cache
}

func NewBlacklist(c cache.Cache) *Blacklist {
	return &Blacklist{cache: c}
}

// Revoke marks the token as unusable for the rest of its lifetime
func (b *Blacklist) Revoke(ctx context.Context, claims *Claims) error {
	if claims.ID == "" {
		return fmt.Errorf("token has no id")
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return b.cache.Set(ctx, revokedKeyPrefix+claims.ID, true, ttl)
}

func (b *Blacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	return b.cache.Exists(ctx, revokedKeyPrefix+jti)
}
