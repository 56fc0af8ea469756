package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func restoredStore(t *testing.T, access string) *Store {
	t.Helper()
	id := alice()
	s := NewStore(&fakeAuth{identity: &id},
		&memStorage{pair: models.TokenPair{Access: access, Refresh: "r"}}, nopLogger{})
	s.Restore(context.Background())
	return s
}

func TestTokenExpiry_ReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	s := restoredStore(t, signedToken(t, exp))

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(exp), "got %s, want %s", got, exp)
}

func TestTokenExpiry_OpaqueTokenHasNone(t *testing.T) {
	s := restoredStore(t, "not-a-jwt")
	_, ok := s.TokenExpiry()
	assert.False(t, ok)
}

func TestTokenExpiry_NoTokenHasNone(t *testing.T) {
	s := NewStore(&fakeAuth{}, &memStorage{}, nopLogger{})
	s.Restore(context.Background())

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
}
