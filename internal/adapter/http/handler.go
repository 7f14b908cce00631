package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the usecase ports, the tenant
// directory for authentication and a logger for structured logging. Routes
// are registered on a chi.Router; every /api/v1 route runs behind tenant
// basic auth.
type Handler struct {
	campaigns     port.CampaignUseCase
	ads           port.AdUseCase
	registrations port.RegistrationUseCase
	analytics     port.AnalyticsUseCase
	businesses    port.BusinessRepository
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	ads port.AdUseCase,
	registrations port.RegistrationUseCase,
	analytics port.AnalyticsUseCase,
	businesses port.BusinessRepository,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		campaigns:     campaigns,
		ads:           ads,
		registrations: registrations,
		analytics:     analytics,
		businesses:    businesses,
		logger:        logger,
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireTenant)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleCampaignList)
			r.Post("/", h.handleCampaignCreate)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleCampaignGet)
				r.Patch("/", h.handleCampaignUpdate)
				r.Delete("/", h.handleCampaignDelete)
				r.Post("/ads", h.handleCampaignAttachAds)
				r.Delete("/ads", h.handleCampaignDetachAds)
			})
		})

		r.Route("/ads", func(r chi.Router) {
			r.Get("/", h.handleAdList)
			r.Post("/", h.handleAdCreate)
			r.Route("/{adID}", func(r chi.Router) {
				r.Get("/", h.handleAdGet)
				r.Patch("/", h.handleAdUpdate)
				r.Delete("/", h.handleAdDelete)
			})
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Get("/", h.handleRegistrationList)
			r.Post("/", h.handleRegistrationCreate)
			r.Get("/export.csv", h.handleRegistrationExport)
			r.Route("/{registrationID}", func(r chi.Router) {
				r.Get("/", h.handleRegistrationGet)
				r.Patch("/", h.handleRegistrationUpdateStatus)
				r.Delete("/", h.handleRegistrationDelete)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/kpis", h.handleAnalyticsKPIs)
			r.Get("/timeseries", h.handleAnalyticsTimeSeries)
			r.Get("/campaigns", h.handleAnalyticsCampaigns)
			r.Get("/ads", h.handleAnalyticsAds)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
