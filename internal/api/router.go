package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/sessionauth/internal/api/handler"
	"github.com/99minutos/sessionauth/internal/api/metrics"
	"github.com/99minutos/sessionauth/internal/api/middleware"
	"github.com/99minutos/sessionauth/internal/api/views"
	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

const metricsPath = "/metrics"

// Swagger instance names registered by the docs/auth and docs/crm packages.
const (
	AuthDocs = "auth"
	CRMDocs  = "crm"
)

// SessionAuthority is the auth service core as seen by the router.
type SessionAuthority interface {
	ports.AuthService
	RefreshActiveSessions(ctx context.Context)
}

// AuthDeps carries everything the auth service router needs.
type AuthDeps struct {
	Auth     SessionAuthority
	Flash    handler.FlashStore // nil disables cross-redirect messages
	CRMURL   string
	Metrics  *metrics.AuthMetrics
	Gatherer prometheus.Gatherer
	Checks   map[string]handler.Checker
	Log      zerolog.Logger
}

// CRMDeps carries everything the resource service router needs.
type CRMDeps struct {
	Validator ports.TokenValidator
	Orders    ports.OrderService
	// LoginURL is the auth service login page as reachable by the browser.
	LoginURL string
	Registry *prometheus.Registry
	Checks   map[string]handler.Checker
	Log      zerolog.Logger
}

func newEcho(log zerolog.Logger) (*echo.Echo, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))

	return e, nil
}

// NewAuthRouter builds the token issuer and validator service.
func NewAuthRouter(deps AuthDeps) (*echo.Echo, error) {
	e, err := newEcho(deps.Log)
	if err != nil {
		return nil, err
	}
	e.Use(middleware.RequestMetrics(deps.Metrics, metricsPath))

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Flash, deps.CRMURL, deps.Log)

	// --- Pages ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)

	// --- API ---
	e.GET("/api/validate", authHandler.Validate)

	// The gauge is refreshed on every scrape so it reflects expirations
	// that no request has swept yet.
	scrape := promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})
	e.GET(metricsPath, func(c echo.Context) error {
		deps.Auth.RefreshActiveSessions(c.Request().Context())
		scrape.ServeHTTP(c.Response(), c.Request())
		return nil
	})

	registerHealth(e, deps.Checks)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(AuthDocs)))

	return e, nil
}

// NewCRMRouter builds the resource service. Pages redirect to the login page
// when the session is not valid; the order API answers 403.
func NewCRMRouter(deps CRMDeps) (*echo.Echo, error) {
	e, err := newEcho(deps.Log)
	if err != nil {
		return nil, err
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "crm",
		Registerer: deps.Registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == metricsPath
		},
	}))

	pageSession := middleware.Session(deps.Validator, middleware.RedirectTo(deps.LoginURL), deps.Log)
	apiSession := middleware.Session(deps.Validator, middleware.Forbidden, deps.Log)

	dashboardHandler := handler.NewDashboardHandler(deps.Orders, deps.Log)
	orderHandler := handler.NewOrderHandler(deps.Orders, deps.Log)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/dashboard")
	})
	e.GET("/dashboard", dashboardHandler.Show, pageSession)

	orders := e.Group("/api/orders", apiSession)
	orders.POST("", orderHandler.Create)
	orders.DELETE("/:id", orderHandler.Delete)

	admin := e.Group("/api/admin", apiSession, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/orders", orderHandler.ListAll)

	e.GET(metricsPath, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Registry,
	}))

	registerHealth(e, deps.Checks)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(CRMDocs)))

	return e, nil
}

func registerHealth(e *echo.Echo, checks map[string]handler.Checker) {
	healthHandler := handler.NewHealthHandler(checks)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
}
