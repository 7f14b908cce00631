package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/port"
)

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignCreate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	c, err := h.campaigns.Create(r.Context(), tenantID(r), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), tenantID(r), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	changed, err := queryTimeRange(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	f := port.CampaignFilter{
		Search:   r.URL.Query().Get("q"),
		Status:   r.URL.Query().Get("status"),
		Changed:  changed,
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}
	page, err := h.campaigns.List(r.Context(), tenantID(r), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignUpdate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	c, err := h.campaigns.Update(r.Context(), tenantID(r), chi.URLParam(r, "campaignID"), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), tenantID(r), chi.URLParam(r, "campaignID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type adIDsRequest struct {
	AdIDs []string `json:"ad_ids"`
}

func (h *Handler) handleCampaignAttachAds(w http.ResponseWriter, r *http.Request) {
	var in adIDsRequest
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	c, err := h.campaigns.AttachAds(r.Context(), tenantID(r), chi.URLParam(r, "campaignID"), in.AdIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCampaignDetachAds(w http.ResponseWriter, r *http.Request) {
	var in adIDsRequest
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	c, err := h.campaigns.DetachAds(r.Context(), tenantID(r), chi.URLParam(r, "campaignID"), in.AdIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
