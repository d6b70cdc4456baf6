package controllers

import (
	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// IsAdmin reports whether the caller holds the admin role. The path email
// must match the token email: one user may not probe another's role.
// GET /user/{email}
func (u *UserController) IsAdmin(c *ctx.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}

	email := c.Param("email")
	if email != caller {
		c.Forbidden()
		return
	}

	admin, err := u.users.IsAdmin(c.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]bool{"admin": admin})
}

// List returns all users.
// GET /users
func (u *UserController) List(c *ctx.Context) {
	users, err := u.users.List(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(users)
}

// Register creates a user; registering an existing email is a no-op that
// returns a null insertedId.
// POST /users
func (u *UserController) Register(c *ctx.Context) {
	var in services.RegisterInput
	if !c.BindJSON(&in) {
		return
	}

	result, err := u.users.Register(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(result)
}

// Promote grants the admin role to a user.
// PATCH /users/{id}
func (u *UserController) Promote(c *ctx.Context) {
	modified, err := u.users.Promote(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]int64{"modifiedCount": modified})
}

// Delete removes a user.
// DELETE /users/{id}
func (u *UserController) Delete(c *ctx.Context) {
	deleted, err := u.users.Delete(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]int64{"deletedCount": deleted})
}
