package controllers

import (
	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// List returns all reviews.
// GET /reviews
func (r *ReviewController) List(c *ctx.Context) {
	reviews, err := r.reviews.List(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(reviews)
}
