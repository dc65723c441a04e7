package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

type CredentialRepository struct {
	db *sql.DB
}

func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts the credential. The unique index on username decides
// duplicates, so concurrent registrations of one name cannot both succeed.
func (r *CredentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	role := cred.Role
	if role == "" {
		role = domain.RoleUser
	}

	res, err := r.db.ExecContext(ctx,
		`insert into users (username, password, role) values (?, ?, ?)
		 on conflict (username) do nothing`,
		cred.Username, cred.Password, role)
	if err != nil {
		return storageErr("insert user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("insert user", err)
	}
	if n == 0 {
		return domain.ErrDuplicateUsername
	}
	return nil
}

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.db.QueryRowContext(ctx,
		`select username, password, role from users where username = ?`, username).
		Scan(&cred.Username, &cred.Password, &cred.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storageErr("find user", err)
	}
	return &cred, nil
}
