package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents where a payment is in the escrow lifecycle
type Status string

const (
	// StatusInitiated: checkout started, gateway has not confirmed yet.
	StatusInitiated Status = "INITIATED"
	// StatusHeld: payment verified, room fee and deposit held in escrow.
	StatusHeld Status = "HELD"
	// StatusPartiallyReleased: one of the two escrowed portions released.
	StatusPartiallyReleased Status = "PARTIALLY_RELEASED"
	// StatusSettled: both escrowed portions released.
	StatusSettled Status = "SETTLED"

	// Terminal alternates.
	StatusFailed   Status = "FAILED"
	StatusRefunded Status = "REFUNDED"
)

// Payment represents one verified booking payment and its escrow state.
// Fee components are fixed at booking time; commission fields are attached
// later by the settlement orchestrator and are null until then.
type Payment struct {
	ID           int64  `json:"id"`
	BookingID    int64  `json:"booking_id"`
	RealtorID    int64  `json:"realtor_id"`
	GuestID      int64  `json:"guest_id"`
	CurrencyCode string `json:"currency_code"`
	Status       Status `json:"status"`

	// Guest-facing price breakdown, immutable after creation.
	RoomFee         decimal.Decimal `json:"room_fee"`
	CleaningFee     decimal.Decimal `json:"cleaning_fee"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`

	// Derived at creation from the fee components.
	Subtotal    decimal.Decimal `json:"subtotal"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Attached by the settlement orchestrator.
	PlatformCommission decimal.NullDecimal `json:"platform_commission"`
	CommissionRate     decimal.NullDecimal `json:"commission_rate"`
	RealtorEarnings    decimal.NullDecimal `json:"realtor_earnings"`

	// Escrow release progress, driven by the external scheduler.
	RoomFeeReleased bool `json:"room_fee_released"`
	DepositReleased bool `json:"deposit_released"`

	// Payout state. CommissionPaidOut flips exactly once.
	CommissionPaidOut bool       `json:"commission_paid_out"`
	PayoutDate        *time.Time `json:"payout_date,omitempty"`
	PayoutReference   *string    `json:"payout_reference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommissionAttached reports whether the settlement orchestrator has
// written the commission fields onto this payment.
func (p *Payment) CommissionAttached() bool {
	return p.RealtorEarnings.Valid
}

// InEscrow reports whether the payment still has funds under escrow
// control (verified, not yet fully settled).
func (p *Payment) InEscrow() bool {
	return p.Status == StatusHeld || p.Status == StatusPartiallyReleased
}

// CommissionComputable reports whether commission may be calculated for
// this payment. Only verified payments qualify.
func (p *Payment) CommissionComputable() bool {
	switch p.Status {
	case StatusHeld, StatusPartiallyReleased, StatusSettled:
		return true
	default:
		return false
	}
}
