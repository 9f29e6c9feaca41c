package commission

import (
	"github.com/shopspring/decimal"

	"github.com/demilade/hostpay/internal/money"
)

// Fixed business rates. These are not runtime configuration; changing them
// changes historical expectations, so they live here as constants.
var (
	// PlatformFeeRate is the platform's cut of the room fee (10%). The
	// same rate drives both the PlatformFee field and the post-escrow
	// RoomFeeSplitPlatform field so the two can never diverge.
	PlatformFeeRate = decimal.NewFromFloat(0.10)

	// ServiceFeeRate is charged against roomFee + cleaningFee (2%),
	// collected immediately at payment verification.
	ServiceFeeRate = decimal.NewFromFloat(0.02)

	// RoomFeeSplitRealtorRate is the realtor's share of the escrowed room
	// fee after the dispute window closes (90%).
	RoomFeeSplitRealtorRate = decimal.NewFromFloat(0.90)

	// LegacyCommissionRate is the historical flat rate (7%) applied to the
	// full booking total by the deprecated calculation path.
	LegacyCommissionRate = decimal.NewFromFloat(0.07)
)

// Breakdown is the full commission picture for one booking payment: what is
// released immediately, what is held in escrow, and how the escrowed room
// fee splits once the dispute window closes. Computed once from the fee
// components and never mutated.
type Breakdown struct {
	Subtotal    money.Money `json:"subtotal"`
	ServiceFee  money.Money `json:"service_fee"`
	PlatformFee money.Money `json:"platform_fee"`
	TotalAmount money.Money `json:"total_amount"`

	// Released to the parties immediately at payment verification.
	CleaningFeeToRealtor money.Money `json:"cleaning_fee_to_realtor"`
	ServiceFeeToPlatform money.Money `json:"service_fee_to_platform"`

	// Held in escrow until the dispute windows elapse.
	RoomFeeInEscrow money.Money `json:"room_fee_in_escrow"`
	DepositInEscrow money.Money `json:"deposit_in_escrow"`

	// Post-dispute-window split of the escrowed room fee.
	RoomFeeSplitRealtor  money.Money `json:"room_fee_split_realtor"`
	RoomFeeSplitPlatform money.Money `json:"room_fee_split_platform"`

	TotalRealtorEarnings money.Money `json:"total_realtor_earnings"`
}

// LegacyBreakdown is the deprecated flat-rate commission result, kept for
// payments settled before the room-fee split model. New integrations should
// use Breakdown; this path only backs the persisted commission fields.
type LegacyBreakdown struct {
	TotalAmount        money.Money     `json:"total_amount"`
	CommissionRate     decimal.Decimal `json:"commission_rate"`
	PlatformCommission money.Money     `json:"platform_commission"`
	RealtorEarnings    money.Money     `json:"realtor_earnings"`

	// ProcessingFee is always zero: gateway fees are charged to the guest
	// by the payment provider and never deducted from the settlement.
	ProcessingFee money.Money `json:"processing_fee"`
}
