package domain

import "time"

// Ad statuses.
const (
	AdStatusActive   = "active"
	AdStatusPaused   = "paused"
	AdStatusArchived = "archived"
)

// AdStatuses lists the allowed ad states.
var AdStatuses = []string{AdStatusActive, AdStatusPaused, AdStatusArchived}

// Ad represents an individual ad creative owned by a tenant. Campaigns refer
// to ads by id; the ad itself does not own the relation.
type Ad struct {
	AdID        string    `bson:"ad_id" json:"ad_id"`
	BusinessID  string    `bson:"business_id" json:"business_id"`
	Title       string    `bson:"title" json:"title"`
	Status      string    `bson:"status" json:"status"`
	CreativeURL string    `bson:"creative_url,omitempty" json:"creative_url,omitempty"`
	Tags        []string  `bson:"tags" json:"tags"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
