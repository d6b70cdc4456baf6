package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/app/repositories"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/auth"
)

// UserStore is the subset of the user repository the service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) (primitive.ObjectID, error)
	All(ctx context.Context) ([]models.User, error)
	Promote(ctx context.Context, id primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// RegisterInput is the registration payload. Password is optional; social
// logins arrive without one.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Photo    string `json:"photo"    validate:"nullable,url"`
	Password string `json:"password" validate:"nullable,min=6"`
}

// RegisterResult reports the insert outcome. InsertedID is nil when the
// email was already registered; registration is idempotent by email.
type RegisterResult struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates a user unless the email already exists, in which case it
// returns a null-insert marker without touching storage.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return RegisterResult{InsertedID: nil, Message: "user already exists"}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return RegisterResult{}, err
	}

	user := models.User{
		Name:  in.Name,
		Email: in.Email,
		Photo: in.Photo,
	}

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return RegisterResult{}, fmt.Errorf("users: hash password: %w", err)
		}
		user.Password = hash
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return RegisterResult{}, err
	}

	hex := id.Hex()
	return RegisterResult{InsertedID: &hex}, nil
}

// IsAdmin reports whether the stored role for email is admin. A missing
// user is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}

// Promote grants the admin role to the user with the given hex id.
func (s *UserService) Promote(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.users.Promote(ctx, id)
}

// Delete removes the user with the given hex id.
func (s *UserService) Delete(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.users.Delete(ctx, id)
}
