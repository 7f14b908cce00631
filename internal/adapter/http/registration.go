package httpadapter

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/port"
)

func registrationFilter(r *http.Request) (port.RegistrationFilter, error) {
	rng, err := queryTimeRange(r)
	if err != nil {
		return port.RegistrationFilter{}, err
	}
	return port.RegistrationFilter{
		CampaignIDs: queryList(r, "campaign_id"),
		AdIDs:       queryList(r, "ad_id"),
		Sources:     queryList(r, "source"),
		Statuses:    queryList(r, "status"),
		Range:       rng,
		Page:        queryInt(r, "page"),
		PageSize:    queryInt(r, "page_size"),
	}, nil
}

func (h *Handler) handleRegistrationCreate(w http.ResponseWriter, r *http.Request) {
	var in port.RegistrationCreate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	reg, err := h.registrations.Create(r.Context(), tenantID(r), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, reg)
}

func (h *Handler) handleRegistrationGet(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrations.Get(r.Context(), tenantID(r), chi.URLParam(r, "registrationID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reg)
}

func (h *Handler) handleRegistrationList(w http.ResponseWriter, r *http.Request) {
	f, err := registrationFilter(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	page, err := h.registrations.List(r.Context(), tenantID(r), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

type statusRequest struct {
	Status string `json:"status"`
}

// handleRegistrationUpdateStatus is the only mutation allowed on a
// registration after creation.
func (h *Handler) handleRegistrationUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in statusRequest
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	reg, err := h.registrations.UpdateStatus(r.Context(), tenantID(r), chi.URLParam(r, "registrationID"), in.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reg)
}

func (h *Handler) handleRegistrationDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.registrations.Delete(r.Context(), tenantID(r), chi.URLParam(r, "registrationID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRegistrationExport serves every matching registration as CSV,
// ignoring pagination. The file is built before any header is committed so a
// store failure still surfaces as a JSON error instead of a truncated 200.
func (h *Handler) handleRegistrationExport(w http.ResponseWriter, r *http.Request) {
	f, err := registrationFilter(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := h.registrations.ExportCSV(r.Context(), tenantID(r), f, &buf); err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="registrations.csv"`)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("csv export error", slog.Any("error", err))
	}
}
