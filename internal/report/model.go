package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Range bounds a report to payments created within [From, To). Nil bounds
// are open-ended.
type Range struct {
	From *time.Time
	To   *time.Time
}

// RealtorReport aggregates one realtor's settled payments. Recomputed on
// every request, never stored.
type RealtorReport struct {
	RealtorID            int64           `json:"realtor_id"`
	CurrencyCode         string          `json:"currency_code"`
	TotalEarnings        decimal.Decimal `json:"total_earnings"`
	CompletedPayouts     decimal.Decimal `json:"completed_payouts"`
	PendingPayouts       decimal.Decimal `json:"pending_payouts"`
	PlatformCommission   decimal.Decimal `json:"platform_commission"`
	BookingCount         int             `json:"booking_count"`
	CompletedPayoutCount int             `json:"completed_payout_count"`
}

// PlatformReport aggregates all settled payments platform-wide.
type PlatformReport struct {
	CurrencyCode       string          `json:"currency_code"`
	GrossRevenue       decimal.Decimal `json:"gross_revenue"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
	CompletedPayouts   decimal.Decimal `json:"completed_payouts"`
	PendingPayouts     decimal.Decimal `json:"pending_payouts"`
	BookingCount       int             `json:"booking_count"`
	RealtorCount       int             `json:"realtor_count"`
}
