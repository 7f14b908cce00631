package usecase

import (
	"context"
	"strings"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// defaultAnalyticsWindow is applied when the caller leaves the range open.
const defaultAnalyticsWindow = 30 * 24 * time.Hour

var (
	granularities = []string{port.GranularityDay, port.GranularityWeek, port.GranularityMonth}
	metrics       = []string{
		port.MetricRegistrations,
		port.MetricMessages,
		port.MetricSpent,
		port.MetricReach,
		port.MetricImpressions,
		port.MetricClicks,
	}
)

// AnalyticsUseCase implements port.AnalyticsUseCase. The store returns only
// buckets that contain registrations; this layer derives the KPI ratios and
// fills the gaps so charts never have to.
type AnalyticsUseCase struct {
	analytics port.AnalyticsRepository
	campaigns port.CampaignRepository
}

// NewAnalyticsUseCase creates the usecase with its repositories.
func NewAnalyticsUseCase(analytics port.AnalyticsRepository, campaigns port.CampaignRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analytics: analytics, campaigns: campaigns}
}

func (u *AnalyticsUseCase) KPISummary(ctx context.Context, businessID string, rng port.TimeRange, f port.AnalyticsFilter) (*port.KPISummary, error) {
	rng = normalizeRange(rng)

	totals, err := u.analytics.Totals(ctx, businessID, rng, f)
	if err != nil {
		return nil, err
	}
	active, err := u.campaigns.CountByStatus(ctx, businessID, domain.CampaignStatusActive)
	if err != nil {
		return nil, err
	}

	return &port.KPISummary{
		Totals:          *totals,
		ActiveCampaigns: active,
		CTR:             safeDiv(float64(totals.Clicks), float64(totals.Impressions)),
		CPM:             safeDiv(totals.Spent, float64(totals.Impressions)/1000.0),
		CPC:             safeDiv(totals.Spent, float64(totals.Clicks)),
		CPR:             safeDiv(totals.Spent, float64(totals.Registrations)),
	}, nil
}

func (u *AnalyticsUseCase) TimeSeries(ctx context.Context, businessID, metric, granularity string, rng port.TimeRange, f port.AnalyticsFilter) ([]port.TimeBucket, error) {
	if !contains(metrics, metric) {
		return nil, domain.NewValidationError("metric", "must be one of: "+strings.Join(metrics, " "))
	}
	if !contains(granularities, granularity) {
		return nil, domain.NewValidationError("granularity", "must be one of: "+strings.Join(granularities, " "))
	}
	rng = normalizeRange(rng)

	sparse, err := u.analytics.SeriesBuckets(ctx, businessID, granularity, rng, f)
	if err != nil {
		return nil, err
	}

	byStart := make(map[time.Time]port.Totals, len(sparse))
	for _, b := range sparse {
		byStart[b.Start] = b.Totals
	}

	// one bucket per granularity unit in the range, zero where empty
	var series []port.TimeBucket
	last := bucketStart(rng.To, granularity)
	for cur := bucketStart(rng.From, granularity); !cur.After(last); cur = nextBucket(cur, granularity) {
		series = append(series, port.TimeBucket{
			Start: cur,
			Value: metricValue(byStart[cur], metric),
		})
	}
	return series, nil
}

func (u *AnalyticsUseCase) CampaignRollup(ctx context.Context, businessID string, rng port.TimeRange, f port.AnalyticsFilter) ([]port.CampaignStats, error) {
	rows, err := u.analytics.CampaignRollup(ctx, businessID, normalizeRange(rng), f)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].CTR = safeDiv(float64(rows[i].Totals.Clicks), float64(rows[i].Totals.Impressions))
		rows[i].CPR = safeDiv(rows[i].Totals.Spent, float64(rows[i].Totals.Registrations))
	}
	return rows, nil
}

func (u *AnalyticsUseCase) AdPerformance(ctx context.Context, businessID string, rng port.TimeRange, campaignID string) ([]port.AdStats, error) {
	rows, err := u.analytics.AdPerformance(ctx, businessID, normalizeRange(rng), campaignID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].CTR = safeDiv(float64(rows[i].Totals.Clicks), float64(rows[i].Totals.Impressions))
		rows[i].CPR = safeDiv(rows[i].Totals.Spent, float64(rows[i].Totals.Registrations))
	}
	return rows, nil
}

// normalizeRange defaults an open range to the last 30 days and pins both
// bounds to UTC.
func normalizeRange(rng port.TimeRange) port.TimeRange {
	if rng.To.IsZero() {
		rng.To = time.Now().UTC()
	}
	if rng.From.IsZero() {
		rng.From = rng.To.Add(-defaultAnalyticsWindow)
	}
	rng.From = rng.From.UTC()
	rng.To = rng.To.UTC()
	return rng
}

// bucketStart truncates t to its bucket boundary in UTC. Weeks start on
// Monday, matching the startOfWeek the store's pipelines truncate with.
func bucketStart(t time.Time, granularity string) time.Time {
	t = t.UTC()
	switch granularity {
	case port.GranularityWeek:
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-back, 0, 0, 0, 0, time.UTC)
	case port.GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

func nextBucket(t time.Time, granularity string) time.Time {
	switch granularity {
	case port.GranularityWeek:
		return t.AddDate(0, 0, 7)
	case port.GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func metricValue(totals port.Totals, metric string) float64 {
	switch metric {
	case port.MetricMessages:
		return float64(totals.Messages)
	case port.MetricSpent:
		return totals.Spent
	case port.MetricReach:
		return float64(totals.Reach)
	case port.MetricImpressions:
		return float64(totals.Impressions)
	case port.MetricClicks:
		return float64(totals.Clicks)
	default:
		return float64(totals.Registrations)
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
