package payout

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/demilade/hostpay/pkg/middleware"
	"github.com/demilade/hostpay/pkg/response"
)

// Handler handles HTTP requests for payout operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payout handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payout endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/{paymentId}", h.Process)

	return r
}

// ProcessPayoutRequest optionally carries the bank-transfer reference from
// the operator initiating the payout.
type ProcessPayoutRequest struct {
	Reference string `json:"reference,omitempty"`
}

// Process handles POST /payouts/{paymentId}
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.ParseInt(chi.URLParam(r, "paymentId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		actorID = 1
	}

	var req ProcessPayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.ProcessPayout(r.Context(), paymentID, actorID, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrEarningsNotComputed):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, ErrAlreadyPaidOut):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to process payout")
		}
		return
	}

	response.JSON(w, http.StatusOK, p)
}
