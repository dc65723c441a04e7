package ports

import (
	"context"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

// CredentialRepository persists registered accounts.
type CredentialRepository interface {
	// Create stores a new credential. It returns domain.ErrDuplicateUsername
	// when the username is taken and leaves the existing row untouched.
	Create(ctx context.Context, cred *domain.Credential) error
	// FindByUsername returns domain.ErrInvalidCredentials when the user is unknown.
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
}
