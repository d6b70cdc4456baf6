package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values stored on a user document. An ordinary user has no role at all.
const RoleAdmin = "admin"

// User is a registered account. Role is empty for ordinary users and set to
// "admin" only through the promote operation.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name"           json:"name"`
	Email    string             `bson:"email"          json:"email"`
	Photo    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Password string             `bson:"password,omitempty" json:"-"` // bcrypt hash, never serialised
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
