package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reports when the current access token expires, parsed from
// its JWT claims without signature verification. Display only: the backend
// decides whether a token is actually accepted, and a token that cannot be
// parsed simply reports no expiry.
func (s *Store) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	raw := s.tokens.Access
	s.mu.RUnlock()
	if raw == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
