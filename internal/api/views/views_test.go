package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

func TestRenderer_Login(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, Login, LoginPage{Messages: []string{"Invalid credentials"}}, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "Invalid credentials") {
		t.Fatalf("message not rendered: %s", buf.String())
	}
}

func TestRenderer_DashboardEscapes(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	page := DashboardPage{
		User:   domain.Claims{Name: "<script>", Role: domain.RoleUser},
		Orders: []domain.Order{{ID: "1", Item: "pen", Price: 2.5}},
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, Dashboard, page, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("name not escaped: %s", out)
	}
	if !strings.Contains(out, "2.50") || !strings.Contains(out, "pen") {
		t.Fatalf("order not rendered: %s", out)
	}
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "missing.html", nil, nil); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}
