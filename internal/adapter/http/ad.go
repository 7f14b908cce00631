package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

func (h *Handler) handleAdCreate(w http.ResponseWriter, r *http.Request) {
	var in port.AdCreate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	a, err := h.ads.Create(r.Context(), tenantID(r), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleAdGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.ads.Get(r.Context(), tenantID(r), chi.URLParam(r, "adID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleAdList(w http.ResponseWriter, r *http.Request) {
	changed, err := queryTimeRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	f := port.AdFilter{
		Search:   r.URL.Query().Get("q"),
		Status:   r.URL.Query().Get("status"),
		Tags:     queryList(r, "tag"),
		Changed:  changed,
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}
	page, err := h.ads.List(r.Context(), tenantID(r), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleAdUpdate(w http.ResponseWriter, r *http.Request) {
	var in port.AdUpdate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	a, err := h.ads.Update(r.Context(), tenantID(r), chi.URLParam(r, "adID"), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

// handleAdDelete deletes an ad and detaches it from referencing campaigns. A
// partial cascade failure is reported as a warning, not an error status: the
// ad itself is gone.
func (h *Handler) handleAdDelete(w http.ResponseWriter, r *http.Request) {
	err := h.ads.Delete(r.Context(), tenantID(r), chi.URLParam(r, "adID"))
	if err != nil {
		var pf *domain.PartialFailureError
		if errors.As(err, &pf) {
			h.logger.Warn("ad delete cascade incomplete", slog.Any("error", err))
			h.writeJSON(w, http.StatusOK, map[string]any{
				"deleted": true,
				"warning": pf.Error(),
			})
			return
		}
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
