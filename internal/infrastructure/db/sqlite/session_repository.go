package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

// SessionRepository stores sessions with expires_at as unix nanoseconds.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Put(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`insert or replace into sessions (token, name, role, expires_at) values (?, ?, ?, ?)`,
		s.Token, s.Claims.Name, s.Claims.Role, s.ExpiresAt.UnixNano())
	if err != nil {
		return storageErr("put session", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	var (
		s       domain.Session
		expires int64
	)
	err := r.db.QueryRowContext(ctx,
		`select token, name, role, expires_at from sessions where token = ?`, token).
		Scan(&s.Token, &s.Claims.Name, &s.Claims.Role, &expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, storageErr("get session", err)
	}
	s.ExpiresAt = time.Unix(0, expires).UTC()
	return &s, nil
}

func (r *SessionRepository) Sweep(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `delete from sessions where expires_at < ?`, now.UnixNano())
	if err != nil {
		return 0, storageErr("sweep sessions", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("sweep sessions", err)
	}
	return n, nil
}

func (r *SessionRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`select count(*) from sessions where expires_at > ?`, now.UnixNano()).Scan(&n)
	if err != nil {
		return 0, storageErr("count sessions", err)
	}
	return n, nil
}
