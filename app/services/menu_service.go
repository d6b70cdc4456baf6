package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/cache"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

// MenuStore is the subset of the menu repository the service needs.
type MenuStore interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MenuInput is the create/update payload for a menu item.
type MenuInput struct {
	Name     string  `json:"name"     validate:"required,max=255"`
	Category string  `json:"category" validate:"required,max=100"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Recipe   string  `json:"recipe"   validate:"nullable"`
	Image    string  `json:"image"    validate:"nullable,url"`
}

func (in MenuInput) model() models.MenuItem {
	return models.MenuItem{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Recipe:   in.Recipe,
		Image:    in.Image,
	}
}

type MenuService struct {
	menu MenuStore
}

func NewMenuService(menu MenuStore) *MenuService {
	return &MenuService{menu: menu}
}

// List returns the full menu, served from the Redis cache when warm.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if cache.Get(menuCacheKey, &items) {
		return items, nil
	}

	items, err := s.menu.All(ctx)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(menuCacheKey, items, menuCacheTTL)
	return items, nil
}

// Get returns one menu item by hex id.
func (s *MenuService) Get(ctx context.Context, idHex string) (models.MenuItem, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return models.MenuItem{}, ErrInvalidID
	}
	return s.menu.FindByID(ctx, id)
}

// Create adds a menu item and invalidates the menu cache.
func (s *MenuService) Create(ctx context.Context, in MenuInput) (string, error) {
	id, err := s.menu.Create(ctx, in.model())
	if err != nil {
		return "", err
	}

	_ = cache.Del(menuCacheKey)
	return id.Hex(), nil
}

// Update overwrites a menu item's editable fields and invalidates the cache.
func (s *MenuService) Update(ctx context.Context, idHex string, in MenuInput) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}

	modified, err := s.menu.Update(ctx, id, in.model())
	if err != nil {
		return 0, err
	}

	_ = cache.Del(menuCacheKey)
	return modified, nil
}

// Delete removes a menu item and invalidates the cache.
func (s *MenuService) Delete(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}

	deleted, err := s.menu.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	_ = cache.Del(menuCacheKey)
	return deleted, nil
}
