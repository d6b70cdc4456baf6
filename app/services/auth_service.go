// Package services holds the business logic. Services depend on small
// store interfaces implemented by the repositories, so the authorization
// and settlement rules can be exercised without a running MongoDB.
package services

import (
	"errors"

	"github.com/shashiranjanraj/bistro-boss-server/pkg/auth"
)

// ErrInvalidID is returned when a path id does not parse as an ObjectID.
var ErrInvalidID = errors.New("invalid id")

// AuthService mints access tokens at login. It keeps no state; signing is
// delegated to pkg/auth.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// IssueToken signs a token for the supplied identity claim. The claim is
// taken at face value: the platform authenticates users upstream and this
// endpoint only converts the identity into a bearer credential.
func (s *AuthService) IssueToken(id auth.Identity) (string, error) {
	return auth.GenerateToken(id)
}
