package services

import (
	"context"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
)

// ReviewStore is the subset of the review repository the service needs.
type ReviewStore interface {
	All(ctx context.Context) ([]models.Review, error)
}

// ReviewService serves the read-only review feed.
type ReviewService struct {
	reviews ReviewStore
}

func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// List returns every review.
func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.reviews.All(ctx)
}
