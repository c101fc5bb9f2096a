package jwt

import (
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	data map[string]time.Duration
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string]time.Duration{}} }

func (m *memoryCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (m *memoryCache) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) error {
	m.data[key] = ttl
	return nil
}
func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}
func (m *memoryCache) DeletePattern(context.Context, string) error { return nil }
func (m *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}
func (m *memoryCache) Ping(context.Context) error { return nil }

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, "alice", true, "librarian")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, "librarian", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokensHaveUniqueIDs(t *testing.T) {
	m := NewManager("secret", time.Hour)
	id := uuid.New()

	a, _ := m.GenerateAccessToken(id, "alice", false, "member")
	b, _ := m.GenerateAccessToken(id, "alice", false, "member")
	ca, _ := m.ValidateAccessToken(a)
	cb, _ := m.ValidateAccessToken(b)

	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	claims := Claims{
		UserID: uuid.NewString(),
		Type:   tokenTypeAccess,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidate_WrongType(t *testing.T) {
	m := NewManager("secret", time.Hour)
	claims := Claims{UserID: uuid.NewString(), Type: "refresh"}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.ErrorContains(t, err, "invalid token type")
}

func TestBlacklist(t *testing.T) {
	ctx := context.Background()
	cache := newMemoryCache()
	bl := NewBlacklist(cache)
	m := NewManager("secret", time.Hour)

	token, _ := m.GenerateAccessToken(uuid.New(), "alice", false, "member")
	claims, _ := m.ValidateAccessToken(token)

	revoked, err := bl.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, claims))

	revoked, err = bl.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl := cache.data[revokedKeyPrefix+claims.ID]
	assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour)
}

func TestBlacklist_EmptyID(t *testing.T) {
	bl := NewBlacklist(newMemoryCache())
	assert.Error(t, bl.Revoke(context.Background(), &Claims{}))

	revoked, err := bl.IsRevoked(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, revoked)
}
