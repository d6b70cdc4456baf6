package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/metrics"
)

// MenuRepository handles the menu collection.
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection("menu")}
}

// All returns the full menu.
func (r *MenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	defer metrics.ObserveMongoOp("menu", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("menu: find all: %w", err)
	}

	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menu: decode: %w", err)
	}
	return items, nil
}

// FindByID returns a single menu item.
func (r *MenuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error) {
	defer metrics.ObserveMongoOp("menu", "find", time.Now())

	var item models.MenuItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("menu: find by id: %w", err)
	}
	return item, nil
}

// Create inserts a menu item and returns the generated id.
func (r *MenuRepository) Create(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error) {
	defer metrics.ObserveMongoOp("menu", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("menu: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update overwrites the editable fields of a menu item and returns the
// modified count.
func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (int64, error) {
	defer metrics.ObserveMongoOp("menu", "update", time.Now())

	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
		"recipe":   item.Recipe,
		"image":    item.Image,
	}}

	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return 0, fmt.Errorf("menu: update: %w", err)
	}
	return res.ModifiedCount, nil
}

// Delete removes a menu item by id and returns the deleted count.
func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer metrics.ObserveMongoOp("menu", "delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("menu: delete: %w", err)
	}
	return res.DeletedCount, nil
}

// EstimatedCount is the fast collection cardinality used by the dashboard.
func (r *MenuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	defer metrics.ObserveMongoOp("menu", "count", time.Now())

	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("menu: count: %w", err)
	}
	return n, nil
}
