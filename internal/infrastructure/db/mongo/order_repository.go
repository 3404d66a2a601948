package mongo

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artesania/storefront-api/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository persists orders. Reads are always filtered by owner
// inside the Mongo query itself, so a foreign order id resolves to
// ErrNoDocuments exactly like a missing one.
type OrderRepository struct {
	col *mongo.Collection

	mu      sync.Mutex
	pending []any
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(ordersCollection)}
}

// FindByOwnerAndID retrieves a single order matching both owner and id.
func (r *OrderRepository) FindByOwnerAndID(ctx context.Context, owner, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var order domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListByOwner returns all orders of the owner, newest first. When
// includeItems is false, the items array is excluded by projection.
func (r *OrderRepository) ListByOwner(ctx context.Context, owner string, includeItems bool) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if !includeItems {
		opts.SetProjection(bson.M{"items": 0})
	}

	cursor, err := r.col.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Stage buffers an order for the next Commit without writing it.
func (r *OrderRepository) Stage(_ context.Context, order *domain.Order) error {
	clone := *order

	r.mu.Lock()
	r.pending = append(r.pending, clone)
	r.mu.Unlock()
	return nil
}

// Commit writes all staged orders in one ordered insert. A single-order
// commit (the normal case) is all-or-nothing.
//
// The batch is consumed whether or not the insert succeeds: once the
// caller has been told the commit failed, those orders must never be
// written by a later commit.
func (r *OrderRepository) Commit(ctx context.Context) error {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true))
	return err
}

// EnsureIndexes creates necessary indexes on the orders collection.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
