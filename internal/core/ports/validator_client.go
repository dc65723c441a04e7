package ports

import (
	"context"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

// TokenValidator resolves a token to claims by asking the issuing service.
// Implementations never cache results.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*domain.Claims, error)
}
