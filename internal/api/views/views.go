// Package views renders the server-side HTML pages of both services.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Renderer.Render.
const (
	Login     = "login.html"
	Register  = "register.html"
	Dashboard = "dashboard.html"
)

// LoginPage is the data of the login form.
type LoginPage struct {
	Messages []string
}

// RegisterPage is the data of the registration form.
type RegisterPage struct {
	Messages []string
}

// DashboardPage is the data of the CRM dashboard.
type DashboardPage struct {
	User   domain.Claims
	Orders []domain.Order
}

// Renderer implements echo.Renderer over the embedded templates. Each page
// is parsed together with layout.html.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page once.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Login, Register, Dashboard} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("views: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
