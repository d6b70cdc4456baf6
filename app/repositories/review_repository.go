package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/metrics"
)

// ReviewRepository handles the reviews collection. Reviews are read-only
// through the API.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

// All returns every review.
func (r *ReviewRepository) All(ctx context.Context) ([]models.Review, error) {
	defer metrics.ObserveMongoOp("reviews", "find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("reviews: find all: %w", err)
	}

	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("reviews: decode: %w", err)
	}
	return reviews, nil
}

// Insert adds a review; used by the seeder only.
func (r *ReviewRepository) Insert(ctx context.Context, reviews []models.Review) error {
	docs := make([]interface{}, len(reviews))
	for i, rv := range reviews {
		docs[i] = rv
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("reviews: insert: %w", err)
	}
	return nil
}
