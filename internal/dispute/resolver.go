package dispute

import (
	"errors"
	"fmt"

	"github.com/demilade/hostpay/internal/money"
)

// Common errors
var (
	ErrUnknownTier    = errors.New("unknown dispute tier")
	ErrNegativeAmount = errors.New("dispute amounts cannot be negative")
)

// RefundForTier maps an admin-assigned dispute tier to the guest's room-fee
// refund. Unknown tiers are a caller bug, not a business condition.
func RefundForTier(tier Tier, roomFee money.Money) (money.Money, error) {
	if roomFee.IsNegative() {
		return money.Money{}, ErrNegativeAmount
	}

	switch tier {
	case TierSevere:
		return roomFee.MulRate(refundFractionSevere), nil
	case TierPartial:
		return roomFee.MulRate(refundFractionPartial), nil
	case TierAbuse:
		return money.Zero(roomFee.Currency()), nil
	default:
		return money.Money{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
}

// DeductFromDeposit resolves a damage claim against the guest's security
// deposit. The deposit is conserved: whatever the realtor does not get is
// refunded to the guest, and the realtor's claim is capped at the deposit.
func DeductFromDeposit(damageAmount, depositAmount money.Money) (*DeductionResult, error) {
	if damageAmount.IsNegative() || depositAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	if damageAmount.Cmp(depositAmount) > 0 {
		// Liability cap: the guest is never billed beyond the deposit.
		return &DeductionResult{
			RealtorGets:       depositAmount,
			GuestRefund:       money.Zero(depositAmount.Currency()),
			IsLiabilityCapped: true,
		}, nil
	}

	return &DeductionResult{
		RealtorGets:       damageAmount,
		GuestRefund:       depositAmount.Sub(damageAmount),
		IsLiabilityCapped: false,
	}, nil
}
