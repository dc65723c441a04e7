package ports

import (
	"context"
	"time"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

// SessionRepository is the durable token store. Every method is a single
// atomic statement so concurrent callers never observe partial writes.
type SessionRepository interface {
	// Put inserts or replaces the session keyed by its token.
	Put(ctx context.Context, s *domain.Session) error
	// Get returns domain.ErrSessionNotFound when the token is unknown.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Sweep deletes every session that expired before now and reports how
	// many rows were removed.
	Sweep(ctx context.Context, now time.Time) (int64, error)
	// CountActive counts sessions still valid at now.
	CountActive(ctx context.Context, now time.Time) (int64, error)
}
