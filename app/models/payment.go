package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the immutable audit record written once per checkout. CartIDs
// and MenuIDs keep the raw hex strings the client submitted; resolution to
// ObjectIDs happens at settlement time.
type Payment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email   string             `bson:"email"   json:"email"`
	Price   float64            `bson:"price"   json:"price"`
	CartIDs []string           `bson:"cartIds" json:"cartIds"`
	MenuIDs []string           `bson:"menuIds" json:"menuIds"`
	Date    time.Time          `bson:"date"    json:"date"`
}

// CategoryStat is one row of the per-category order breakdown.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// AdminSummary is the dashboard headline block: collection cardinalities
// plus total revenue across all payments.
type AdminSummary struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
