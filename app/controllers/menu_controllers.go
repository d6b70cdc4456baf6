package controllers

import (
	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// List returns the full menu.
// GET /menu
func (m *MenuController) List(c *ctx.Context) {
	items, err := m.menu.List(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(items)
}

// Get returns one menu item.
// GET /menu/{id}
func (m *MenuController) Get(c *ctx.Context) {
	item, err := m.menu.Get(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(item)
}

// Create adds a menu item.
// POST /menu
func (m *MenuController) Create(c *ctx.Context) {
	var in services.MenuInput
	if !c.BindJSON(&in) {
		return
	}

	id, err := m.menu.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created(map[string]string{"insertedId": id})
}

// Update overwrites a menu item's editable fields.
// PATCH /menu/{id}
func (m *MenuController) Update(c *ctx.Context) {
	var in services.MenuInput
	if !c.BindJSON(&in) {
		return
	}

	modified, err := m.menu.Update(c.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]int64{"modifiedCount": modified})
}

// Delete removes a menu item.
// DELETE /menu/{id}
func (m *MenuController) Delete(c *ctx.Context) {
	deleted, err := m.menu.Delete(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]int64{"deletedCount": deleted})
}
