package commission

import "github.com/shopspring/decimal"

// PreviewRequest carries a booking's fee components for a commission
// breakdown preview, before any payment exists.
type PreviewRequest struct {
	RoomFee         decimal.Decimal `json:"room_fee"`
	CleaningFee     decimal.Decimal `json:"cleaning_fee"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	CurrencyCode    string          `json:"currency_code"`
}
