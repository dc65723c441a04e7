package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

func TestOrderRepository_DeleteOwned_MalformedID(t *testing.T) {
	repo := &OrderRepository{}

	if err := repo.DeleteOwned(context.Background(), "not-an-object-id", "alice"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestMongoOrder_ToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	got := mongoOrder{ID: oid, Username: "alice", Item: "book", Price: 9.5}.toDomain()

	if got.ID != oid.Hex() || got.Username != "alice" || got.Item != "book" || got.Price != 9.5 {
		t.Fatalf("unexpected order: %+v", got)
	}
}
