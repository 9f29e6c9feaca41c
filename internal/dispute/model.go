package dispute

import (
	"github.com/shopspring/decimal"

	"github.com/demilade/hostpay/internal/money"
)

// Tier classifies a guest complaint. The tier is assigned by an admin after
// review; this package only maps it to money.
type Tier string

const (
	// TierSevere: realtor at fault — inaccessible property, fraudulent
	// listing, uninhabitable condition. Full room-fee refund.
	TierSevere Tier = "TIER_1_SEVERE"

	// TierPartial: partial fault — missing amenities, broken but
	// non-blocking equipment. 30% room-fee refund.
	TierPartial Tier = "TIER_2_PARTIAL"

	// TierAbuse: claim deemed abusive, unsubstantiated or late. No refund.
	TierAbuse Tier = "TIER_3_ABUSE"
)

// Refund fractions of room fee per tier.
var (
	refundFractionSevere  = decimal.NewFromInt(1)
	refundFractionPartial = decimal.NewFromFloat(0.30)
)

// DeductionResult is the outcome of claiming damages against a security
// deposit. RealtorGets + GuestRefund always equals the deposit; the realtor
// can never claim more than was deposited.
type DeductionResult struct {
	RealtorGets       money.Money `json:"realtor_gets"`
	GuestRefund       money.Money `json:"guest_refund"`
	IsLiabilityCapped bool        `json:"is_liability_capped"`
}
