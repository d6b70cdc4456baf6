package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one menu item placed in a user's cart. Cart entries are keyed
// by the owner's email so anonymous carts survive login.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email"      json:"email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name"       json:"name"`
	Image      string             `bson:"image"      json:"image"`
	Price      float64            `bson:"price"      json:"price"`
}
