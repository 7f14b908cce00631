package port

import (
	"context"
	"time"
)

// Time-series granularities. Buckets truncate in UTC; weeks start on Monday.
const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
)

// Time-series metrics, each a per-bucket sum over the tenant's registrations
// (registrations counts documents).
const (
	MetricRegistrations = "registrations"
	MetricMessages      = "messages"
	MetricSpent         = "spent"
	MetricReach         = "reach"
	MetricImpressions   = "impressions"
	MetricClicks        = "clicks"
)

// AnalyticsFilter narrows aggregations the same way RegistrationFilter
// narrows listings, minus pagination.
type AnalyticsFilter struct {
	CampaignIDs []string
	AdIDs       []string
	Sources     []string
}

// Totals are summed registration metrics. AdsServed counts distinct ad ids
// among the matched registrations.
type Totals struct {
	Registrations int64   `json:"registrations"`
	Messages      int64   `json:"messages"`
	Spent         float64 `json:"spent"`
	Reach         int64   `json:"reach"`
	Impressions   int64   `json:"impressions"`
	Clicks        int64   `json:"clicks"`
	AdsServed     int64   `json:"ads_served"`
}

// KPISummary is the dashboard headline block: totals plus derived ratios and
// the tenant's active campaign count.
type KPISummary struct {
	Totals
	ActiveCampaigns int64   `json:"active_campaigns"`
	CTR             float64 `json:"ctr"`
	CPM             float64 `json:"cpm"`
	CPC             float64 `json:"cpc"`
	CPR             float64 `json:"cpr"`
}

// SeriesBucket is one time bucket of summed metrics as returned by the
// store. Buckets with no registrations are absent; the usecase fills gaps.
type SeriesBucket struct {
	Start  time.Time
	Totals Totals
}

// TimeBucket is one (bucket_start, value) pair of a single-metric series.
type TimeBucket struct {
	Start time.Time `json:"start"`
	Value float64   `json:"value"`
}

// CampaignStats is a per-campaign rollup row joined with the campaign's name
// and status.
type CampaignStats struct {
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Totals     Totals  `json:"totals"`
	CTR        float64 `json:"ctr"`
	CPR        float64 `json:"cpr"`
}

// AdStats is a per-ad rollup row joined with the ad's title, status and tags.
type AdStats struct {
	AdID   string   `json:"ad_id"`
	Title  string   `json:"title"`
	Status string   `json:"status"`
	Tags   []string `json:"tags,omitempty"`
	Totals Totals   `json:"totals"`
	CTR    float64  `json:"ctr"`
	CPR    float64  `json:"cpr"`
}

// AnalyticsRepository runs tenant-scoped aggregations over registrations.
type AnalyticsRepository interface {
	// Totals sums metrics over registrations in the range.
	Totals(ctx context.Context, businessID string, rng TimeRange, f AnalyticsFilter) (*Totals, error)
	// SeriesBuckets groups registrations by truncated timestamp. Only
	// buckets with at least one registration are returned.
	SeriesBuckets(ctx context.Context, businessID, granularity string, rng TimeRange, f AnalyticsFilter) ([]SeriesBucket, error)
	// CampaignRollup sums metrics per campaign, joined with campaign
	// metadata, sorted by registrations descending.
	CampaignRollup(ctx context.Context, businessID string, rng TimeRange, f AnalyticsFilter) ([]CampaignStats, error)
	// AdPerformance sums metrics per ad, joined with ad metadata, sorted by
	// registrations descending. campaignID narrows to one campaign when set.
	AdPerformance(ctx context.Context, businessID string, rng TimeRange, campaignID string) ([]AdStats, error)
}
