package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/demilade/hostpay/pkg/response"
)

// Handler handles HTTP requests for commission reports
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/platform", h.Platform)
	r.Get("/realtors/{realtorId}", h.Realtor)

	return r
}

// parseRange reads optional start_date/end_date query params (YYYY-MM-DD,
// inclusive on both ends).
func parseRange(r *http.Request) (Range, bool) {
	var rng Range

	if s := r.URL.Query().Get("start_date"); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			return rng, false
		}
		rng.From = &from
	}
	if s := r.URL.Query().Get("end_date"); s != "" {
		day, err := time.Parse("2006-01-02", s)
		if err != nil {
			return rng, false
		}
		// Inclusive end date: bound at the start of the following day.
		to := day.Add(24 * time.Hour)
		rng.To = &to
	}

	return rng, true
}

// Realtor handles GET /reports/realtors/{realtorId}
func (h *Handler) Realtor(w http.ResponseWriter, r *http.Request) {
	realtorID, err := strconv.ParseInt(chi.URLParam(r, "realtorId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid realtor ID")
		return
	}

	rng, ok := parseRange(r)
	if !ok {
		response.BadRequest(w, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	report, err := h.service.RealtorReport(r.Context(), realtorID, rng)
	if err != nil {
		response.InternalError(w, "Failed to build realtor report")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// Platform handles GET /reports/platform
func (h *Handler) Platform(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(r)
	if !ok {
		response.BadRequest(w, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	report, err := h.service.PlatformReport(r.Context(), rng)
	if err != nil {
		response.InternalError(w, "Failed to build platform report")
		return
	}

	response.JSON(w, http.StatusOK, report)
}
