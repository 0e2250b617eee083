package domain

import "time"

// Session represents a login session backed by a PASETO token.
// Only the token hash is stored; the token itself lives with the client.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry.
// Expiry is checked lazily on read; nothing sweeps sessions in the background.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
