package payment

import "github.com/shopspring/decimal"

// CreatePaymentRequest records a verified booking payment with its
// guest-facing fee breakdown
type CreatePaymentRequest struct {
	BookingID       int64           `json:"booking_id" validate:"required"`
	RealtorID       int64           `json:"realtor_id" validate:"required"`
	GuestID         int64           `json:"guest_id" validate:"required"`
	CurrencyCode    string          `json:"currency_code"`
	RoomFee         decimal.Decimal `json:"room_fee"`
	CleaningFee     decimal.Decimal `json:"cleaning_fee"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
}
