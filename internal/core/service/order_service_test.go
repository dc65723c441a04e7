package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	orders    map[string]domain.Order
	seq       int
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.seq++
	id := fmt.Sprintf("order-%d", r.seq)
	clone := *o
	clone.ID = id
	r.orders[id] = clone
	return id, nil
}

func (r *stubOrderRepo) ListByUsername(_ context.Context, username string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.Username == username {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

// DeleteOwned applies the same owner filter as the Mongo query.
func (r *stubOrderRepo) DeleteOwned(_ context.Context, id, username string) error {
	o, ok := r.orders[id]
	if !ok || o.Username != username {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func TestOrderService_CreateAndList(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	id, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{Username: "alice", Item: "book", Price: 12.5})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if id == "" {
		t.Fatalf("expected id")
	}
	_, _ = svc.CreateOrder(context.Background(), ports.CreateOrderInput{Username: "bob", Item: "pen", Price: 1})

	orders, err := svc.ListOrders(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 1 || orders[0].Item != "book" {
		t.Fatalf("expected only alice's order, got %+v", orders)
	}

	all, _ := svc.ListAllOrders(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 orders overall, got %d", len(all))
	}
}

func TestOrderService_CreateError(t *testing.T) {
	repo := newStubOrderRepo()
	repo.createErr = errors.New("mongo down")
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{Username: "alice", Item: "x", Price: 1}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOrderService_DeleteOnlyOwned(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	id, _ := svc.CreateOrder(context.Background(), ports.CreateOrderInput{Username: "alice", Item: "book", Price: 10})

	if err := svc.DeleteOrder(context.Background(), id, "bob"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for non-owner, got %v", err)
	}
	if _, ok := repo.orders[id]; !ok {
		t.Fatalf("order must survive a foreign delete")
	}

	if err := svc.DeleteOrder(context.Background(), id, "alice"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.orders[id]; ok {
		t.Fatalf("order should be gone")
	}
}
