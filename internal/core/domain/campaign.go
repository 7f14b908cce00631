package domain

import "time"

// Campaign statuses. Campaigns are soft-archived rather than deleted in the
// normal flow.
const (
	CampaignStatusDraft    = "draft"
	CampaignStatusActive   = "active"
	CampaignStatusPaused   = "paused"
	CampaignStatusArchived = "archived"
)

// CampaignStatuses lists the allowed campaign lifecycle states.
var CampaignStatuses = []string{
	CampaignStatusDraft,
	CampaignStatusActive,
	CampaignStatusPaused,
	CampaignStatusArchived,
}

// Targeting describes who a campaign should reach. It is embedded in the
// campaign document and has no identity of its own.
type Targeting struct {
	Locations   []string   `bson:"locations,omitempty" json:"locations,omitempty"`
	Interests   []string   `bson:"interests,omitempty" json:"interests,omitempty"`
	Devices     []string   `bson:"devices,omitempty" json:"devices,omitempty"`
	BudgetDaily float64    `bson:"budget_daily,omitempty" json:"budget_daily,omitempty"`
	StartDate   *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
}

// Campaign represents an advertising campaign owned by a tenant. AdIDs holds
// non-owning references to ads of the same tenant; referential integrity is
// maintained by the repository layer, not the database.
type Campaign struct {
	CampaignID string    `bson:"campaign_id" json:"campaign_id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	Name       string    `bson:"name" json:"name"`
	Status     string    `bson:"status" json:"status"`
	AdIDs      []string  `bson:"ad_ids" json:"ad_ids"`
	Targeting  Targeting `bson:"targeting" json:"targeting"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
