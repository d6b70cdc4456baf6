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

// PaymentRepository handles the payments collection. Payment documents are
// written once at settlement and never mutated.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payments")}
}

// Create inserts the immutable payment record and returns the generated id.
func (r *PaymentRepository) Create(ctx context.Context, p models.Payment) (primitive.ObjectID, error) {
	defer metrics.ObserveMongoOp("payments", "insert", time.Now())

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("payments: insert: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// ByEmail returns all payments recorded for email.
func (r *PaymentRepository) ByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	defer metrics.ObserveMongoOp("payments", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("payments: find by email: %w", err)
	}

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("payments: decode: %w", err)
	}
	return payments, nil
}

// All returns every payment record; the aggregation service folds over the
// result so statistics always derive from the immutable collection.
func (r *PaymentRepository) All(ctx context.Context) ([]models.Payment, error) {
	defer metrics.ObserveMongoOp("payments", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("payments: find all: %w", err)
	}

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("payments: decode: %w", err)
	}
	return payments, nil
}

// EstimatedCount is the fast collection cardinality used by the dashboard.
func (r *PaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	defer metrics.ObserveMongoOp("payments", "count", time.Now())

	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("payments: count: %w", err)
	}
	return n, nil
}
