package port

import (
	"context"
	"time"

	"adboard/internal/core/domain"
)

// Pagination bounds shared by all list operations.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a bounded slice of results plus the total match count, so the
// caller can render pagination without a second query.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// TimeRange bounds a query by time. A zero From or To leaves that side
// unbounded.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether neither bound is set.
func (r TimeRange) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// CampaignFilter narrows a campaign listing. Search matches the name
// case-insensitively. Changed bounds by created/updated time.
type CampaignFilter struct {
	Search   string
	Status   string
	Changed  TimeRange
	Page     int
	PageSize int
}

// AdFilter narrows an ad listing. Tags requires all given tags to be present.
type AdFilter struct {
	Search   string
	Status   string
	Tags     []string
	Changed  TimeRange
	Page     int
	PageSize int
}

// RegistrationFilter narrows a registration listing or export. The slice
// fields are OR-sets; Range bounds the registration timestamp.
type RegistrationFilter struct {
	CampaignIDs []string
	AdIDs       []string
	Sources     []string
	Statuses    []string
	Range       TimeRange
	Page        int
	PageSize    int
}

// CampaignPatch is a partial campaign update. Nil fields are left unchanged.
type CampaignPatch struct {
	Name      *string
	Status    *string
	Targeting *domain.Targeting
}

// AdPatch is a partial ad update. Nil fields are left unchanged.
type AdPatch struct {
	Title       *string
	Status      *string
	CreativeURL *string
	Tags        *[]string
}

// BusinessRepository persists tenants. It is not tenant-scoped itself: it is
// the lookup that authentication and seeding run against.
type BusinessRepository interface {
	Create(ctx context.Context, b domain.Business) error
	Get(ctx context.Context, businessID string) (*domain.Business, error)
}

// CampaignRepository persists campaigns. Every method takes the tenant id and
// must treat ids owned by other tenants as absent.
type CampaignRepository interface {
	Create(ctx context.Context, c domain.Campaign) error
	Get(ctx context.Context, businessID, campaignID string) (*domain.Campaign, error)
	List(ctx context.Context, businessID string, f CampaignFilter) (*Page[domain.Campaign], error)
	Update(ctx context.Context, businessID, campaignID string, patch CampaignPatch) (*domain.Campaign, error)
	Delete(ctx context.Context, businessID, campaignID string) error

	// AttachAds adds ad ids to the campaign's reference list without
	// duplicating existing entries.
	AttachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error)
	// DetachAds removes ad ids from the campaign's reference list.
	DetachAds(ctx context.Context, businessID, campaignID string, adIDs []string) (*domain.Campaign, error)
	// DetachAdFromAll removes the ad id from every campaign of the tenant
	// and returns the number of campaigns modified.
	DetachAdFromAll(ctx context.Context, businessID, adID string) (int64, error)
	// CountByStatus counts the tenant's campaigns in the given status.
	CountByStatus(ctx context.Context, businessID, status string) (int64, error)
}

// AdRepository persists ad creatives, tenant-scoped like CampaignRepository.
type AdRepository interface {
	Create(ctx context.Context, a domain.Ad) error
	Get(ctx context.Context, businessID, adID string) (*domain.Ad, error)
	List(ctx context.Context, businessID string, f AdFilter) (*Page[domain.Ad], error)
	Update(ctx context.Context, businessID, adID string, patch AdPatch) (*domain.Ad, error)
	Delete(ctx context.Context, businessID, adID string) error

	// CountByIDs counts how many of the given ids exist for the tenant.
	// Used to verify ownership before attaching ads to a campaign.
	CountByIDs(ctx context.Context, businessID string, adIDs []string) (int64, error)
}

// RegistrationRepository persists lead registrations. Registrations are
// immutable after creation except for their status.
type RegistrationRepository interface {
	Create(ctx context.Context, r domain.Registration) error
	Get(ctx context.Context, businessID, registrationID string) (*domain.Registration, error)
	List(ctx context.Context, businessID string, f RegistrationFilter) (*Page[domain.Registration], error)
	UpdateStatus(ctx context.Context, businessID, registrationID, status string) (*domain.Registration, error)
	Delete(ctx context.Context, businessID, registrationID string) error

	// ListAll streams every registration matching the filter, ignoring the
	// filter's pagination. Used by the CSV export.
	ListAll(ctx context.Context, businessID string, f RegistrationFilter) ([]domain.Registration, error)
}
