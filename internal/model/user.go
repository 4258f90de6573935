package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Role is the single authorization fact stored on a user.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User represents a person who signed in to the platform.
type User struct {
	ID      bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email   string        `json:"email" bson:"email" validate:"required,email"`
	Name    string        `json:"name,omitempty" bson:"name,omitempty"`
	Photo   string        `json:"photo,omitempty" bson:"photo,omitempty"`
	Contact string        `json:"contact,omitempty" bson:"contact,omitempty"`
	Role    Role          `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the user holds the privileged role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserProfile holds the fields a user may change about themselves.
type UserProfile struct {
	Name    string `json:"name" bson:"name"`
	Photo   string `json:"photo" bson:"photo"`
	Contact string `json:"contact" bson:"contact"`
}
