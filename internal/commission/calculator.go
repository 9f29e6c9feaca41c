package commission

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/demilade/hostpay/internal/money"
)

// Common errors
var (
	ErrNegativeAmount = errors.New("fee amounts cannot be negative")
	ErrInvalidRate    = errors.New("commission rate must be between 0 and 1")
)

// ComputeBreakdown derives the full commission breakdown from a booking's
// fee components. Pure and deterministic: the same inputs always produce
// the same breakdown.
func ComputeBreakdown(roomFee, cleaningFee, securityDeposit money.Money) (*Breakdown, error) {
	if roomFee.IsNegative() || cleaningFee.IsNegative() || securityDeposit.IsNegative() {
		return nil, ErrNegativeAmount
	}

	subtotal := roomFee.Add(cleaningFee)
	serviceFee := subtotal.MulRate(ServiceFeeRate)
	platformFee := roomFee.MulRate(PlatformFeeRate)
	totalAmount := subtotal.Add(serviceFee).Add(securityDeposit)

	splitRealtor := roomFee.MulRate(RoomFeeSplitRealtorRate)
	splitPlatform := roomFee.MulRate(PlatformFeeRate)

	return &Breakdown{
		Subtotal:             subtotal,
		ServiceFee:           serviceFee,
		PlatformFee:          platformFee,
		TotalAmount:          totalAmount,
		CleaningFeeToRealtor: cleaningFee,
		ServiceFeeToPlatform: serviceFee,
		RoomFeeInEscrow:      roomFee,
		DepositInEscrow:      securityDeposit,
		RoomFeeSplitRealtor:  splitRealtor,
		RoomFeeSplitPlatform: splitPlatform,
		TotalRealtorEarnings: cleaningFee.Add(splitRealtor),
	}, nil
}

// ComputeLegacyBreakdown applies the historical flat commission rate to the
// full booking total. A nil rate uses LegacyCommissionRate (7%).
//
// Deprecated: kept only for the persisted commission fields on payments
// settled under the flat-rate model. Use ComputeBreakdown for anything new.
func ComputeLegacyBreakdown(totalAmount money.Money, rate *decimal.Decimal) (*LegacyBreakdown, error) {
	if totalAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	r := LegacyCommissionRate
	if rate != nil {
		r = *rate
	}
	if r.IsNegative() || r.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidRate
	}

	platformCommission := totalAmount.MulRate(r)

	return &LegacyBreakdown{
		TotalAmount:        totalAmount,
		CommissionRate:     r,
		PlatformCommission: platformCommission,
		RealtorEarnings:    totalAmount.Sub(platformCommission),
		ProcessingFee:      money.Zero(totalAmount.Currency()),
	}, nil
}
