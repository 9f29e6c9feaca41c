package dispute

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/demilade/hostpay/internal/money"
	"github.com/demilade/hostpay/pkg/response"
)

// Handler handles HTTP requests for dispute resolution (admin tooling)
type Handler struct {
	defaultCurrency string
}

// NewHandler creates a new dispute handler
func NewHandler(defaultCurrency string) *Handler {
	return &Handler{defaultCurrency: defaultCurrency}
}

// Routes returns the router for dispute endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/refund", h.Refund)
	r.Post("/deposit-deduction", h.DepositDeduction)

	return r
}

// Refund handles POST /disputes/refund
func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = h.defaultCurrency
	}

	refund, err := RefundForTier(req.Tier, money.New(req.RoomFee, currency))
	if err != nil {
		if errors.Is(err, ErrUnknownTier) || errors.Is(err, ErrNegativeAmount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to resolve refund")
		return
	}

	response.JSON(w, http.StatusOK, &RefundResponse{Tier: req.Tier, Refund: refund})
}

// DepositDeduction handles POST /disputes/deposit-deduction
func (h *Handler) DepositDeduction(w http.ResponseWriter, r *http.Request) {
	var req DeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = h.defaultCurrency
	}

	result, err := DeductFromDeposit(
		money.New(req.DamageAmount, currency),
		money.New(req.DepositAmount, currency),
	)
	if err != nil {
		if errors.Is(err, ErrNegativeAmount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to resolve deposit deduction")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
