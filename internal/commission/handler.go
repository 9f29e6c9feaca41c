package commission

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/demilade/hostpay/internal/money"
	"github.com/demilade/hostpay/pkg/response"
)

// Handler handles HTTP requests for commission previews
type Handler struct {
	defaultCurrency string
}

// NewHandler creates a new commission handler
func NewHandler(defaultCurrency string) *Handler {
	return &Handler{defaultCurrency: defaultCurrency}
}

// Routes returns the router for commission endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/preview", h.Preview)

	return r
}

// Preview handles POST /commissions/preview
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = h.defaultCurrency
	}

	breakdown, err := ComputeBreakdown(
		money.New(req.RoomFee, currency),
		money.New(req.CleaningFee, currency),
		money.New(req.SecurityDeposit, currency),
	)
	if err != nil {
		if errors.Is(err, ErrNegativeAmount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute commission breakdown")
		return
	}

	response.JSON(w, http.StatusOK, breakdown)
}
