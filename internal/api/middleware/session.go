package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

// Context keys set by Session.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// Session trusts the auth_token cookie only after the issuing service has
// validated it. The token is read from the cookie alone. Every failure,
// including an unreachable validator, is handed to deny; the end user never
// sees the difference.
func Session(validator ports.TokenValidator, deny echo.HandlerFunc, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if cookie, err := c.Cookie(domain.TokenCookie); err == nil {
				token = cookie.Value
			}

			claims, err := validator.Validate(c.Request().Context(), token)
			if err != nil {
				ev := log.Debug()
				if errors.Is(err, domain.ErrUpstreamUnavailable) {
					ev = log.Error()
				}
				ev.Err(err).Str("path", c.Path()).Msg("session rejected")
				return deny(c)
			}
			if claims.Name == "" {
				log.Warn().Str("path", c.Path()).Msg("validator returned claims without a name")
				return deny(c)
			}

			c.Set(CtxUsername, claims.Name)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// RedirectTo sends unauthenticated browsers to url (the auth service login
// page as seen from the browser).
func RedirectTo(url string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusFound, url)
	}
}

// Forbidden answers unauthenticated API calls.
func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized"})
}
