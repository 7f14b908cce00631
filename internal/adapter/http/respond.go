package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain error kinds to HTTP statuses. Anything unrecognised
// is logged and reported as a generic 500 so driver errors never leak.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]any{"error": "already exists"})
	default:
		h.logger.Error("request error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed; the usecase clamps the zero into its default.
func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

// queryTime parses a timestamp query parameter as RFC3339, falling back to a
// plain date. The zero time means the bound is unset.
func queryTime(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(key, "must be an RFC3339 timestamp or YYYY-MM-DD date")
	}
	return t, nil
}

// queryTimeRange reads from/to bounds shared by list and analytics routes.
func queryTimeRange(r *http.Request) (port.TimeRange, error) {
	from, err := queryTime(r, "from")
	if err != nil {
		return port.TimeRange{}, err
	}
	to, err := queryTime(r, "to")
	if err != nil {
		return port.TimeRange{}, err
	}
	return port.TimeRange{From: from, To: to}, nil
}

func queryList(r *http.Request, key string) []string {
	vals := r.URL.Query()[key]
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
