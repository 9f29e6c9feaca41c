package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/demilade/hostpay/internal/payment"
)

// SettledPaymentLister lists settled payments for aggregation.
type SettledPaymentLister interface {
	ListSettled(ctx context.Context, f payment.Filter) ([]*payment.Payment, error)
}

// Service computes commission reports. Reports are pure aggregations over
// the filtered payment set; every call re-scans, nothing is cached.
type Service struct {
	payments        SettledPaymentLister
	defaultCurrency string
}

// NewService creates a new report service
func NewService(payments SettledPaymentLister, defaultCurrency string) *Service {
	return &Service{payments: payments, defaultCurrency: defaultCurrency}
}

// RealtorReport aggregates one realtor's settled payments within the range
func (s *Service) RealtorReport(ctx context.Context, realtorID int64, r Range) (*RealtorReport, error) {
	payments, err := s.payments.ListSettled(ctx, payment.Filter{
		RealtorID: &realtorID,
		From:      r.From,
		To:        r.To,
	})
	if err != nil {
		return nil, err
	}

	report := &RealtorReport{
		RealtorID:    realtorID,
		CurrencyCode: s.defaultCurrency,
	}

	for _, p := range payments {
		report.BookingCount++
		report.CurrencyCode = p.CurrencyCode

		if p.RealtorEarnings.Valid {
			report.TotalEarnings = report.TotalEarnings.Add(p.RealtorEarnings.Decimal)
			if p.CommissionPaidOut {
				report.CompletedPayouts = report.CompletedPayouts.Add(p.RealtorEarnings.Decimal)
				report.CompletedPayoutCount++
			}
		}
		if p.PlatformCommission.Valid {
			report.PlatformCommission = report.PlatformCommission.Add(p.PlatformCommission.Decimal)
		}
	}

	// A payout is never un-completed, so this can't go negative.
	report.PendingPayouts = report.TotalEarnings.Sub(report.CompletedPayouts)
	return report, nil
}

// PlatformReport aggregates all settled payments within the range
func (s *Service) PlatformReport(ctx context.Context, r Range) (*PlatformReport, error) {
	payments, err := s.payments.ListSettled(ctx, payment.Filter{From: r.From, To: r.To})
	if err != nil {
		return nil, err
	}

	report := &PlatformReport{CurrencyCode: s.defaultCurrency}

	var totalEarnings decimal.Decimal
	realtors := make(map[int64]struct{})

	for _, p := range payments {
		report.BookingCount++
		report.CurrencyCode = p.CurrencyCode
		realtors[p.RealtorID] = struct{}{}

		report.GrossRevenue = report.GrossRevenue.Add(p.TotalAmount)

		if p.PlatformCommission.Valid {
			report.PlatformCommission = report.PlatformCommission.Add(p.PlatformCommission.Decimal)
		}
		if p.RealtorEarnings.Valid {
			totalEarnings = totalEarnings.Add(p.RealtorEarnings.Decimal)
			if p.CommissionPaidOut {
				report.CompletedPayouts = report.CompletedPayouts.Add(p.RealtorEarnings.Decimal)
			}
		}
	}

	report.PendingPayouts = totalEarnings.Sub(report.CompletedPayouts)
	report.RealtorCount = len(realtors)
	return report, nil
}
