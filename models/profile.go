// models/profile.go
package models

import "time"

// Profile is the per-user record backing role resolution. It is keyed by the
// principal id issued by the identity provider and created once through the
// self-service setup flow (first write wins).
type Profile struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"first_name" json:"firstName"`
	LastName  string    `bson:"last_name" json:"lastName"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
