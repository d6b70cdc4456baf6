package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/metrics"
)

// CartRepository handles the carts collection.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection("carts")}
}

// ByEmail returns all cart entries owned by email.
func (r *CartRepository) ByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	defer metrics.ObserveMongoOp("carts", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("carts: find by email: %w", err)
	}

	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("carts: decode: %w", err)
	}
	return items, nil
}

// Create inserts a cart entry and returns the generated id.
func (r *CartRepository) Create(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	defer metrics.ObserveMongoOp("carts", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("carts: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Delete removes one cart entry by id and returns the deleted count.
func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer metrics.ObserveMongoOp("carts", "delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("carts: delete: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteMany removes every cart entry whose id is in ids. Deleting zero
// documents is not an error; settlement relies on that.
func (r *CartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	defer metrics.ObserveMongoOp("carts", "delete", time.Now())

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("carts: delete many: %w", err)
	}
	return res.DeletedCount, nil
}
