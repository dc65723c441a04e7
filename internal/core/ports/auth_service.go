package ports

import (
	"context"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

// AuthService issues and validates session tokens.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Validate(ctx context.Context, token string) (*domain.Claims, error)
}

// AuthRecorder receives the observability signals emitted by the token
// lifecycle.
type AuthRecorder interface {
	LoginSucceeded()
	LoginFailed()
	SetActiveSessions(n int64)
	ObserveValidation(result string, seconds float64)
}
