package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
)

// CartStore is the subset of the cart repository the service needs.
type CartStore interface {
	ByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Create(ctx context.Context, item models.CartItem) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// CartInput is the add-to-cart payload.
type CartInput struct {
	Email      string  `json:"email"      validate:"required,email"`
	MenuItemID string  `json:"menuItemId" validate:"required"`
	Name       string  `json:"name"       validate:"required,max=255"`
	Image      string  `json:"image"      validate:"nullable,url"`
	Price      float64 `json:"price"      validate:"gte=0"`
}

type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

// ListByEmail returns all cart entries owned by email.
func (s *CartService) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.carts.ByEmail(ctx, email)
}

// Add stores a cart entry and returns its hex id.
func (s *CartService) Add(ctx context.Context, in CartInput) (string, error) {
	id, err := s.carts.Create(ctx, models.CartItem{
		Email:      in.Email,
		MenuItemID: in.MenuItemID,
		Name:       in.Name,
		Image:      in.Image,
		Price:      in.Price,
	})
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Remove deletes one cart entry by hex id.
func (s *CartService) Remove(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.carts.Delete(ctx, id)
}
