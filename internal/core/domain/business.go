package domain

import "time"

// Business is a tenant. Every document in the other collections carries its
// BusinessID, and every repository operation is scoped to exactly one tenant.
type Business struct {
	BusinessID   string    `bson:"business_id" json:"business_id"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
