package httpadapter

import (
	"net/http"

	"adboard/internal/core/port"
)

func analyticsFilter(r *http.Request) port.AnalyticsFilter {
	return port.AnalyticsFilter{
		CampaignIDs: queryList(r, "campaign_id"),
		AdIDs:       queryList(r, "ad_id"),
		Sources:     queryList(r, "source"),
	}
}

// handleAnalyticsKPIs returns the headline KPI block for the tenant over an
// optional from/to range (defaults to the last 30 days).
func (h *Handler) handleAnalyticsKPIs(w http.ResponseWriter, r *http.Request) {
	rng, err := queryTimeRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	kpis, err := h.analytics.KPISummary(r.Context(), tenantID(r), rng, analyticsFilter(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, kpis)
}

// handleAnalyticsTimeSeries returns one bucket per granularity unit in the
// range; buckets with no registrations carry a zero value.
func (h *Handler) handleAnalyticsTimeSeries(w http.ResponseWriter, r *http.Request) {
	rng, err := queryTimeRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = port.MetricRegistrations
	}
	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = port.GranularityDay
	}
	series, err := h.analytics.TimeSeries(r.Context(), tenantID(r), metric, granularity, rng, analyticsFilter(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"metric":      metric,
		"granularity": granularity,
		"series":      series,
	})
}

func (h *Handler) handleAnalyticsCampaigns(w http.ResponseWriter, r *http.Request) {
	rng, err := queryTimeRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	rows, err := h.analytics.CampaignRollup(r.Context(), tenantID(r), rng, analyticsFilter(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaigns": rows})
}

func (h *Handler) handleAnalyticsAds(w http.ResponseWriter, r *http.Request) {
	rng, err := queryTimeRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	rows, err := h.analytics.AdPerformance(r.Context(), tenantID(r), rng, r.URL.Query().Get("campaign_id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ads": rows})
}
