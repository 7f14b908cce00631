package domain

import "time"

// Registration statuses. A registration is immutable after creation except
// for this field.
const (
	RegistrationStatusNew       = "new"
	RegistrationStatusContacted = "contacted"
	RegistrationStatusConverted = "converted"
	RegistrationStatusClosed    = "closed"
)

// RegistrationStatuses lists the allowed registration states.
var RegistrationStatuses = []string{
	RegistrationStatusNew,
	RegistrationStatusContacted,
	RegistrationStatusConverted,
	RegistrationStatusClosed,
}

// Registration is a lead captured from an ad or campaign. CampaignID and AdID
// are attribution references, not ownership. The metric fields (messages,
// spent, reach, impressions, clicks) are reported by the ad platform per lead
// batch and feed the analytics rollups.
type Registration struct {
	RegistrationID string            `bson:"registration_id" json:"registration_id"`
	BusinessID     string            `bson:"business_id" json:"business_id"`
	CampaignID     string            `bson:"campaign_id" json:"campaign_id"`
	AdID           string            `bson:"ad_id,omitempty" json:"ad_id,omitempty"`
	UserID         string            `bson:"user_id,omitempty" json:"user_id,omitempty"`
	LeadName       string            `bson:"lead_name,omitempty" json:"lead_name,omitempty"`
	LeadEmail      string            `bson:"lead_email,omitempty" json:"lead_email,omitempty"`
	LeadPhone      string            `bson:"lead_phone,omitempty" json:"lead_phone,omitempty"`
	Source         string            `bson:"source" json:"source"`
	Status         string            `bson:"status" json:"status"`
	Cost           float64           `bson:"cost" json:"cost"`
	Timestamp      time.Time         `bson:"timestamp" json:"timestamp"`
	Meta           map[string]string `bson:"meta,omitempty" json:"meta,omitempty"`
	Messages       int64             `bson:"messages" json:"messages"`
	Spent          float64           `bson:"spent" json:"spent"`
	Reach          int64             `bson:"reach" json:"reach"`
	Impressions    int64             `bson:"impressions" json:"impressions"`
	Clicks         int64             `bson:"clicks" json:"clicks"`
	CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updated_at"`
}
