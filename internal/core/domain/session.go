package domain

import "time"

// SessionTTL is the fixed lifetime of every issued token. It is short enough
// that downstream services re-validate on each protected request.
const SessionTTL = 30 * time.Second

// Claims is the identity attached to a session.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session maps an opaque token to its claims until ExpiresAt.
type Session struct {
	Token     string
	Claims    Claims
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session is logically expired at now.
// A session whose expiry instant has been reached is no longer valid.
func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TokenCookie is the cookie carrying the token between browser and services.
const TokenCookie = "auth_token"
