package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

type stubValidator struct {
	validateFn func(ctx context.Context, token string) (*domain.Claims, error)
	calls      []string
}

func (s *stubValidator) Validate(ctx context.Context, token string) (*domain.Claims, error) {
	s.calls = append(s.calls, token)
	return s.validateFn(ctx, token)
}

func TestSession_ValidCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: domain.TokenCookie, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	v := &stubValidator{validateFn: func(_ context.Context, token string) (*domain.Claims, error) {
		return &domain.Claims{Name: "alice", Role: "user"}, nil
	}}

	called := false
	handler := Session(v, RedirectTo("http://auth/login"), zerolog.Nop())(func(c echo.Context) error {
		called = true
		if c.Get(CtxUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxRole) != "user" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if len(v.calls) != 1 || v.calls[0] != "tok" {
		t.Fatalf("expected cookie token to be validated once, got %v", v.calls)
	}
}

func TestSession_ValidatorDownRedirects(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: domain.TokenCookie, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	v := &stubValidator{validateFn: func(context.Context, string) (*domain.Claims, error) {
		return nil, fmt.Errorf("%w: validator returned 500", domain.ErrUpstreamUnavailable)
	}}

	handler := Session(v, RedirectTo("http://auth/login"), zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "http://auth/login" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestSession_IgnoresQueryToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders?token=from-query", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	v := &stubValidator{validateFn: func(_ context.Context, token string) (*domain.Claims, error) {
		if token == "" {
			return nil, domain.ErrNoToken
		}
		return &domain.Claims{Name: "mallory", Role: "user"}, nil
	}}

	handler := Session(v, Forbidden, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(v.calls) != 1 || v.calls[0] != "" {
		t.Fatalf("query parameter must not be used as token, got %v", v.calls)
	}
}

func TestSession_RejectsNamelessClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: domain.TokenCookie, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	v := &stubValidator{validateFn: func(context.Context, string) (*domain.Claims, error) {
		return &domain.Claims{}, nil
	}}

	handler := Session(v, Forbidden, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
