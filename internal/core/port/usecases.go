package port

import (
	"context"
	"io"
	"time"

	"adboard/internal/core/domain"
)

// CampaignCreate is the payload for creating a campaign. Status defaults to
// draft when empty.
type CampaignCreate struct {
	Name      string           `json:"name" validate:"required"`
	Status    string           `json:"status" validate:"omitempty,oneof=draft active paused archived"`
	AdIDs     []string         `json:"ad_ids" validate:"omitempty,dive,required"`
	Targeting domain.Targeting `json:"targeting"`
}

// CampaignUpdate is a partial campaign update; nil fields are untouched.
type CampaignUpdate struct {
	Name      *string           `json:"name" validate:"omitempty,min=1"`
	Status    *string           `json:"status" validate:"omitempty,oneof=draft active paused archived"`
	Targeting *domain.Targeting `json:"targeting"`
}

// AdCreate is the payload for creating an ad. Status defaults to active.
type AdCreate struct {
	Title       string   `json:"title" validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=active paused archived"`
	CreativeURL string   `json:"creative_url" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

// AdUpdate is a partial ad update; nil fields are untouched.
type AdUpdate struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Status      *string   `json:"status" validate:"omitempty,oneof=active paused archived"`
	CreativeURL *string   `json:"creative_url" validate:"omitempty,url"`
	Tags        *[]string `json:"tags"`
}

// RegistrationCreate is the payload for recording a lead. Registrations are
// immutable afterwards except for their status.
type RegistrationCreate struct {
	CampaignID  string            `json:"campaign_id" validate:"required"`
	AdID        string            `json:"ad_id"`
	UserID      string            `json:"user_id"`
	LeadName    string            `json:"lead_name"`
	LeadEmail   string            `json:"lead_email" validate:"omitempty,email"`
	LeadPhone   string            `json:"lead_phone"`
	Source      string            `json:"source" validate:"required"`
	Status      string            `json:"status" validate:"omitempty,oneof=new contacted converted closed"`
	Cost        float64           `json:"cost" validate:"gte=0"`
	Timestamp   time.Time         `json:"timestamp" validate:"required"`
	Meta        map[string]string `json:"meta"`
	Messages    int64             `json:"messages" validate:"gte=0"`
	Spent       float64           `json:"spent" validate:"gte=0"`
	Reach       int64             `json:"reach" validate:"gte=0"`
	Impressions int64             `json:"impressions" validate:"gte=0"`
	Clicks      int64             `json:"clicks" validate:"gte=0"`
}

// CampaignUseCase exposes campaign management to the presentation layer.
// Every operation is scoped to the authenticated tenant.
type CampaignUseCase interface {
	Create(ctx context.Context, businessID string, in CampaignCreate) (*domain.Campaign, error)
	Get(ctx context.Context, businessID, campaignID string) (*domain.Campaign, error)
	List(ctx context.Context, businessID string, f CampaignFilter) (*Page[domain.Campaign], error)
	Update(ctx context.Context, businessID, campaignID string, in CampaignUpdate) (*domain.Campaign, error)
	Delete(ctx context.Context, businessID, campaignID string) error
	AttachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error)
	DetachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error)
}

// AdUseCase exposes ad-library management. Delete cascades: the ad id is
// removed from every campaign referencing it; if that secondary write fails
// the returned error is a *domain.PartialFailureError and the delete stands.
type AdUseCase interface {
	Create(ctx context.Context, businessID string, in AdCreate) (*domain.Ad, error)
	Get(ctx context.Context, businessID, adID string) (*domain.Ad, error)
	List(ctx context.Context, businessID string, f AdFilter) (*Page[domain.Ad], error)
	Update(ctx context.Context, businessID, adID string, in AdUpdate) (*domain.Ad, error)
	Delete(ctx context.Context, businessID, adID string) error
}

// RegistrationUseCase exposes lead management and the CSV export. ExportCSV
// writes all matching rows, not just the current page.
type RegistrationUseCase interface {
	Create(ctx context.Context, businessID string, in RegistrationCreate) (*domain.Registration, error)
	Get(ctx context.Context, businessID, registrationID string) (*domain.Registration, error)
	List(ctx context.Context, businessID string, f RegistrationFilter) (*Page[domain.Registration], error)
	UpdateStatus(ctx context.Context, businessID, registrationID, status string) (*domain.Registration, error)
	Delete(ctx context.Context, businessID, registrationID string) error
	ExportCSV(ctx context.Context, businessID string, f RegistrationFilter, w io.Writer) error
}

// AnalyticsUseCase exposes rollups and time series over the tenant's
// registrations. TimeSeries returns one bucket per granularity unit in the
// range, zero-valued where no registrations fall.
type AnalyticsUseCase interface {
	KPISummary(ctx context.Context, businessID string, rng TimeRange, f AnalyticsFilter) (*KPISummary, error)
	TimeSeries(ctx context.Context, businessID, metric, granularity string, rng TimeRange, f AnalyticsFilter) ([]TimeBucket, error)
	CampaignRollup(ctx context.Context, businessID string, rng TimeRange, f AnalyticsFilter) ([]CampaignStats, error)
	AdPerformance(ctx context.Context, businessID string, rng TimeRange, campaignID string) ([]AdStats, error)
}
