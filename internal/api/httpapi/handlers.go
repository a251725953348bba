package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Leganyst/time-manager/internal/pagination"
	"github.com/Leganyst/time-manager/internal/service"
)

type handler struct {
	svc  HoursService
	ping func(ctx context.Context) error
}

type hoursResponse struct {
	ContactCenterID string    `json:"contactCenterId"`
	Open            bool      `json:"open"`
	WeekdayHours    string    `json:"weekdayHours"`
	WeekendHours    string    `json:"weekendHours"`
	EvaluatedAt     time.Time `json:"evaluatedAt"`
}

type contactCenterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GET /api/v1/contact-centers/{contactCenterID}/hours?at=RFC3339
func (h *handler) hours(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	id := strings.TrimSpace(chi.URLParam(r, "contactCenterID"))

	at, err := parseAt(r.URL.Query().Get("at"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st, err := h.svc.Status(r.Context(), id, at)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidContactCenter):
			writeError(w, http.StatusBadRequest, "contact center id must be a UUID")
		case errors.Is(err, service.ErrContactCenterNotFound):
			writeError(w, http.StatusNotFound, "contact center not found")
		default:
			logger.Error().Err(err).Str("contact_center_id", id).Msg("Failed to evaluate opening hours")
			writeError(w, http.StatusInternalServerError, "failed to evaluate opening hours")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, hoursResponse{
		ContactCenterID: st.ContactCenterID,
		Open:            st.Open,
		WeekdayHours:    st.WeekdayHours,
		WeekendHours:    st.WeekendHours,
		EvaluatedAt:     st.EvaluatedAt,
	})
}

// GET /api/v1/contact-centers?page=&page_size=
func (h *handler) listContactCenters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := optionalInt(q.Get("page"), "page")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	size, err := optionalInt(q.Get("page_size"), "page_size")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.ListContactCenters(r.Context(), pagination.NewRequest(page, size))
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to list contact centers")
		writeError(w, http.StatusInternalServerError, "failed to list contact centers")
		return
	}

	writeJSON(w, r, http.StatusOK, pagination.Map(result, func(cc service.ContactCenterSummary) contactCenterResponse {
		return contactCenterResponse{ID: cc.ID, Name: cc.Name}
	}))
}

// GET /healthz
func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Msg("Health check failed")
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func parseAt(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.New("at must be an RFC3339 timestamp")
	}
	return &at, nil
}

func optionalInt(raw, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, errors.New(field + " must be a positive integer")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}
