package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

// Validation results reported to the AuthRecorder.
const (
	ResultOK      = "ok"
	ResultNoToken = "no_token"
	ResultInvalid = "invalid"
	ResultExpired = "expired"
	ResultError   = "error"
)

// AuthService implements registration, token issuance and token validation.
type AuthService struct {
	credentials ports.CredentialRepository
	sessions    ports.SessionRepository
	passwords   PasswordScheme
	recorder    ports.AuthRecorder
	log         zerolog.Logger

	ttl      time.Duration
	now      func() time.Time
	newToken func() (string, error)
}

// Option customises an AuthService.
type Option func(*AuthService)

// WithClock replaces the wall clock used for issuing and expiring sessions.
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

func NewAuthService(
	credentials ports.CredentialRepository,
	sessions ports.SessionRepository,
	passwords PasswordScheme,
	recorder ports.AuthRecorder,
	log zerolog.Logger,
	opts ...Option,
) *AuthService {
	if passwords == nil {
		passwords = plainScheme{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	s := &AuthService{
		credentials: credentials,
		sessions:    sessions,
		passwords:   passwords,
		recorder:    recorder,
		log:         log,
		ttl:         domain.SessionTTL,
		now:         time.Now,
		newToken:    newToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register stores a new credential with the default role.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	stored, err := s.passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.credentials.Create(ctx, &domain.Credential{
		Username: username,
		Password: stored,
		Role:     domain.RoleUser,
	})
}

// Login checks the credentials and, on a match, issues a fresh session.
// Unknown users and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	role, err := s.check(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.recorder.LoginFailed()
		}
		return nil, err
	}

	token, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	sess := &domain.Session{
		Token:     token,
		Claims:    domain.Claims{Name: username, Role: role},
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.recorder.LoginSucceeded()
	s.RefreshActiveSessions(ctx)

	s.log.Info().Str("username", username).Time("expires_at", sess.ExpiresAt).Msg("session issued")
	return sess, nil
}

// Validate resolves a token to the claims stored at login. Expired sessions
// are swept first, and the expiry is checked again after the lookup in case a
// concurrent sweep has not caught up yet.
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.Claims, error) {
	start := time.Now()
	claims, err := s.validate(ctx, token)
	s.recorder.ObserveValidation(validationResult(err), time.Since(start).Seconds())
	return claims, err
}

func (s *AuthService) validate(ctx context.Context, token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrNoToken
	}

	now := s.now()
	if n, err := s.sessions.Sweep(ctx, now); err != nil {
		s.log.Warn().Err(err).Msg("session sweep failed")
	} else {
		if n > 0 {
			s.log.Debug().Int64("removed", n).Msg("expired sessions swept")
		}
		s.RefreshActiveSessions(ctx)
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	if sess.ExpiredAt(now) {
		return nil, domain.ErrTokenExpired
	}

	claims := sess.Claims
	return &claims, nil
}

// RefreshActiveSessions recomputes the active session gauge. Failures only
// leave the gauge stale.
func (s *AuthService) RefreshActiveSessions(ctx context.Context) {
	n, err := s.sessions.CountActive(ctx, s.now())
	if err != nil {
		s.log.Debug().Err(err).Msg("count active sessions")
		return
	}
	s.recorder.SetActiveSessions(n)
}

// Check reports whether the credentials match a registered account and, on a
// match, returns its role. A miss is not an error.
func (s *AuthService) Check(ctx context.Context, username, password string) (string, bool, error) {
	role, err := s.check(ctx, username, password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return role, true, nil
}

func (s *AuthService) check(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	cred, err := s.credentials.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if !s.passwords.Verify(cred.Password, password) {
		return "", domain.ErrInvalidCredentials
	}

	if cred.Role == "" {
		return domain.RoleUser, nil
	}
	return cred.Role, nil
}

// newToken returns a random (version 4) UUID rendered as a string.
func newToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func validationResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrNoToken):
		return ResultNoToken
	case errors.Is(err, domain.ErrTokenExpired):
		return ResultExpired
	case errors.Is(err, domain.ErrUnauthenticated):
		return ResultInvalid
	default:
		return ResultError
	}
}

type nopRecorder struct{}

func (nopRecorder) LoginSucceeded()                   {}
func (nopRecorder) LoginFailed()                      {}
func (nopRecorder) SetActiveSessions(int64)           {}
func (nopRecorder) ObserveValidation(string, float64) {}
