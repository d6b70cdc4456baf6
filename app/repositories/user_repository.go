// Package repositories is the MongoDB data-access layer. One repository per
// collection; constructors take the connected database handle so callers
// control the client lifetime.
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

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// UserRepository handles the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveMongoOp("users", "find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find by email: %w", err)
	}
	return user, nil
}

// RoleByEmail returns the stored role for an email, or "" when the user has
// none. A missing user also reports "" so the role authority denies access
// without special-casing.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// Create inserts a new user and returns the generated id.
func (r *UserRepository) Create(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	defer metrics.ObserveMongoOp("users", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("users: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// All returns every user record.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	defer metrics.ObserveMongoOp("users", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("users: find all: %w", err)
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("users: decode: %w", err)
	}
	return users, nil
}

// Promote sets the admin role on the given user. Returns the number of
// documents modified (0 when the id matches nothing or the user is already
// an admin).
func (r *UserRepository) Promote(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer metrics.ObserveMongoOp("users", "update", time.Now())

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return 0, fmt.Errorf("users: promote: %w", err)
	}
	return res.ModifiedCount, nil
}

// Delete removes a user by id and returns the deleted count.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer metrics.ObserveMongoOp("users", "delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("users: delete: %w", err)
	}
	return res.DeletedCount, nil
}

// EstimatedCount is the fast collection cardinality used by the dashboard.
func (r *UserRepository) EstimatedCount(ctx context.Context) (int64, error) {
	defer metrics.ObserveMongoOp("users", "count", time.Now())

	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("users: count: %w", err)
	}
	return n, nil
}
