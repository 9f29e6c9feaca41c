package settlement

import "github.com/shopspring/decimal"

// AttachCommissionRequest optionally overrides the default commission rate
// for a single payment (historical contracts carry negotiated rates).
type AttachCommissionRequest struct {
	CustomRate *decimal.Decimal `json:"custom_rate,omitempty"`
}
