package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/api/views"
	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

// Page messages shown on the login and registration forms.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgInternalError      = "Internal error"
	msgAccountCreated     = "Account created. Please log in."
	msgUsernameTaken      = "Username already exists."
	msgMissingFields      = "Username and password are required."
	msgRegisterFailed     = "Error creating account."
)

type AuthHandler struct {
	authService ports.AuthService
	flash       flasher
	crmURL      string
	log         zerolog.Logger
}

// NewAuthHandler wires the auth pages and the validation endpoint. crmURL is
// where the browser goes after a successful login; flash may be nil.
func NewAuthHandler(authService ports.AuthService, flash FlashStore, crmURL string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		flash:       flasher{store: flash, log: log},
		crmURL:      crmURL,
		log:         log,
	}
}

// LoginPage renders the login form with any pending flash messages.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, views.Login, views.LoginPage{Messages: h.flash.pop(c)})
}

// Login authenticates the form credentials and issues a session token.
//
// On success the token is set as the auth_token cookie and the browser is
// redirected to the CRM. On failure the form is rendered again without a
// cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	// An unreadable form is checked as empty credentials so it counts as a
	// failed login.
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		h.log.Debug().Err(err).Msg("login form unreadable")
		form = credentialsForm{}
	}

	session, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.renderLogin(c, msgInvalidCredentials)
		}
		h.log.Error().Err(err).Msg("login failed")
		return h.renderLogin(c, msgInternalError)
	}

	c.SetCookie(&http.Cookie{
		Name:     domain.TokenCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(domain.SessionTTL.Seconds()),
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, h.crmURL)
}

func (h *AuthHandler) renderLogin(c echo.Context, message string) error {
	msgs := append(h.flash.pop(c), message)
	return c.Render(http.StatusOK, views.Login, views.LoginPage{Messages: msgs})
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, views.Register, views.RegisterPage{})
}

// Register creates an account with the default role and sends the browser
// to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		h.log.Debug().Err(err).Msg("registration form unreadable")
		return h.renderRegister(c, msgMissingFields)
	}
	if err := c.Validate(&form); err != nil {
		h.log.Debug().Str("reason", err.Error()).Msg("registration form rejected")
		return h.renderRegister(c, msgMissingFields)
	}

	err := h.authService.Register(c.Request().Context(), form.Username, form.Password)
	switch {
	case err == nil:
		h.flash.push(c, msgAccountCreated)
		return c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, domain.ErrDuplicateUsername):
		return h.renderRegister(c, msgUsernameTaken)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return h.renderRegister(c, msgMissingFields)
	default:
		h.log.Error().Err(err).Msg("register failed")
		return h.renderRegister(c, msgRegisterFailed)
	}
}

func (h *AuthHandler) renderRegister(c echo.Context, message string) error {
	return c.Render(http.StatusOK, views.Register, views.RegisterPage{Messages: []string{message}})
}

// Validate resolves a token to its claims.
//
// @Summary      Validate a session token
// @Description  The token is read from the "token" query parameter, falling back to the auth_token cookie.
// @Tags         auth
// @Produce      json
// @Param        token  query     string  false  "Session token"
// @Success      200    {object}  validateResponse
// @Failure      401    {object}  validateResponse
// @Failure      500    {object}  validateResponse
// @Router       /api/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		if cookie, err := c.Cookie(domain.TokenCookie); err == nil {
			token = cookie.Value
		}
	}

	claims, err := h.authService.Validate(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return c.JSON(http.StatusUnauthorized, validateResponse{
				Status:  "error",
				Message: domain.UnauthenticatedReason(err),
			})
		}
		h.log.Error().Err(err).Msg("token validation failed")
		return c.JSON(http.StatusInternalServerError, validateResponse{
			Status:  "error",
			Message: "internal error",
		})
	}

	return c.JSON(http.StatusOK, validateResponse{
		Status: "ok",
		Name:   claims.Name,
		Role:   claims.Role,
	})
}
