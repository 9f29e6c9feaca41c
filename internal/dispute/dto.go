package dispute

import (
	"github.com/shopspring/decimal"

	"github.com/demilade/hostpay/internal/money"
)

// RefundRequest asks for the room-fee refund owed for an admin-assigned
// dispute tier.
type RefundRequest struct {
	Tier         Tier            `json:"tier"`
	RoomFee      decimal.Decimal `json:"room_fee"`
	CurrencyCode string          `json:"currency_code"`
}

// RefundResponse carries the resolved refund amount.
type RefundResponse struct {
	Tier   Tier        `json:"tier"`
	Refund money.Money `json:"refund"`
}

// DeductionRequest asks how a damage claim resolves against a deposit.
type DeductionRequest struct {
	DamageAmount  decimal.Decimal `json:"damage_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	CurrencyCode  string          `json:"currency_code"`
}
