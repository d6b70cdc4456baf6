package controllers

import (
	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// List returns the cart entries owned by the email query parameter. An
// empty email simply matches nothing.
// GET /carts?email=
func (cc *CartController) List(c *ctx.Context) {
	items, err := cc.carts.ListByEmail(c.Context(), c.Query("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(items)
}

// Add places a menu item into a cart.
// POST /carts
func (cc *CartController) Add(c *ctx.Context) {
	var in services.CartInput
	if !c.BindJSON(&in) {
		return
	}

	id, err := cc.carts.Add(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created(map[string]string{"insertedId": id})
}

// Remove deletes one cart entry.
// DELETE /carts/{id}
func (cc *CartController) Remove(c *ctx.Context) {
	deleted, err := cc.carts.Remove(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]int64{"deletedCount": deleted})
}
