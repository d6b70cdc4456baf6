// Package controllers maps HTTP requests onto the service layer. Handlers
// use pkg/ctx and never touch storage directly.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/bistro-boss-server/app/repositories"
	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/auth"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/logger"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/middleware"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// IssueToken signs an access token for the posted identity claim.
// POST /jwt
func (a *AuthController) IssueToken(c *ctx.Context) {
	var id auth.Identity
	if !c.BindJSON(&id) {
		return
	}

	token, err := a.service.IssueToken(id)
	if err != nil {
		logger.WithCtx(c.Context()).Error("token signing failed", "error", err)
		c.Error(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Success(map[string]string{"token": token})
}

// callerEmail returns the access-guard-decoded email, or false when the
// guard did not run, which means the route is wired wrong.
func callerEmail(c *ctx.Context) (string, bool) {
	claims, ok := middleware.ClaimsFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return "", false
	}
	return claims.Email, true
}

// fail translates common service errors into responses.
func fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.BadRequest("invalid id")
	case errors.Is(err, repositories.ErrNotFound):
		c.NotFound()
	default:
		logger.WithCtx(c.Context()).Error("request failed", "error", err)
		c.Error(http.StatusInternalServerError, "Internal Server Error")
	}
}
