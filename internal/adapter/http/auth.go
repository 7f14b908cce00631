package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"adboard/internal/core/domain"
)

type contextKey string

const businessIDKey contextKey = "business_id"

// requireTenant authenticates the request with HTTP basic auth where the
// username is the business id and the password is the tenant credential. On
// success the business id is stored in the request context; every handler
// scopes its queries with it. Unknown tenants and bad passwords are
// indistinguishable to the client.
func (h *Handler) requireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		businessID, password, ok := r.BasicAuth()
		if !ok || businessID == "" {
			h.unauthorized(w)
			return
		}

		business, err := h.businesses.Get(r.Context(), businessID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				h.logger.Error("tenant lookup error", slog.Any("error", err))
			}
			h.unauthorized(w)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(password)) != nil {
			h.unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), businessIDKey, business.BusinessID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="adboard"`)
	http.Error(w, "invalid business or password", http.StatusUnauthorized)
}

// tenantID returns the authenticated business id from the request context.
func tenantID(r *http.Request) string {
	id, _ := r.Context().Value(businessIDKey).(string)
	return id
}
