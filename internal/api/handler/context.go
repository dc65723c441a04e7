package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/sessionauth/internal/api/middleware"
	"github.com/99minutos/sessionauth/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Session middleware. An
// empty name means the middleware did not run; the request is refused
// rather than served for an anonymous owner.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	name, _ := c.Get(middleware.CtxUsername).(string)
	if name == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	return domain.Claims{Name: name, Role: role}, nil
}
