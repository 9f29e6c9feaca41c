package settlement

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/demilade/hostpay/internal/commission"
	"github.com/demilade/hostpay/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/{paymentId}/commission", h.AttachCommission)
	r.Post("/{paymentId}/release-room-fee", h.ReleaseRoomFee)
	r.Post("/{paymentId}/release-deposit", h.ReleaseDeposit)

	return r
}

// AttachCommission handles POST /settlements/{paymentId}/commission
func (h *Handler) AttachCommission(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.ParseInt(chi.URLParam(r, "paymentId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	// Body is optional; an empty body means the default rate.
	var req AttachCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.AttachCommission(r.Context(), paymentID, req.CustomRate); err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrPaymentNotSettled):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, commission.ErrInvalidRate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to attach commission")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "commission attached"})
}

// ReleaseRoomFee handles POST /settlements/{paymentId}/release-room-fee
func (h *Handler) ReleaseRoomFee(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.ParseInt(chi.URLParam(r, "paymentId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	p, err := h.service.ReleaseRoomFee(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotInEscrow):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, ErrRoomFeeAlreadyReleased):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to release room fee")
		}
		return
	}

	response.JSON(w, http.StatusOK, p)
}

// ReleaseDeposit handles POST /settlements/{paymentId}/release-deposit
func (h *Handler) ReleaseDeposit(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.ParseInt(chi.URLParam(r, "paymentId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	p, err := h.service.ReleaseDeposit(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotInEscrow):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, ErrDepositAlreadyReleased):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to release deposit")
		}
		return
	}

	response.JSON(w, http.StatusOK, p)
}
