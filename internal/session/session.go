package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a token ID has no live session (expired,
// revoked, or never issued).
var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind a cookie token. Exactly one of
// UserID/AdminID is set, matching the token's scope.
type Session struct {
	UserID   int64  `json:"user_id,omitempty"`
	AdminID  int64  `json:"admin_id,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Store persists sessions keyed by token ID. Implementations: in-process
// memory store (default) and Redis for multi-instance deployments.
type Store interface {
	Put(ctx context.Context, jti string, s Session, ttl time.Duration) error
	Get(ctx context.Context, jti string) (*Session, error)
	Delete(ctx context.Context, jti string) error
}
