package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demilade/hostpay/internal/payment"
)

// fakeLister applies the filter in memory, mirroring the repository query.
type fakeLister struct {
	payments []*payment.Payment
}

func (l *fakeLister) ListSettled(_ context.Context, f payment.Filter) ([]*payment.Payment, error) {
	var out []*payment.Payment
	for _, p := range l.payments {
		if p.Status != payment.StatusPartiallyReleased && p.Status != payment.StatusSettled {
			continue
		}
		if f.RealtorID != nil && p.RealtorID != *f.RealtorID {
			continue
		}
		if f.From != nil && p.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !p.CreatedAt.Before(*f.To) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func settledPayment(id, realtorID int64, total, earnings, commission string, paidOut bool, createdAt time.Time) *payment.Payment {
	return &payment.Payment{
		ID:                 id,
		RealtorID:          realtorID,
		CurrencyCode:       "NGN",
		Status:             payment.StatusSettled,
		TotalAmount:        decimal.RequireFromString(total),
		RealtorEarnings:    decimal.NewNullDecimal(decimal.RequireFromString(earnings)),
		PlatformCommission: decimal.NewNullDecimal(decimal.RequireFromString(commission)),
		CommissionPaidOut:  paidOut,
		CreatedAt:          createdAt,
	}
}

func TestRealtorReport(t *testing.T) {
	day := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{payments: []*payment.Payment{
		settledPayment(1, 7, "132200", "122946", "9254", true, day),
		settledPayment(2, 7, "50000", "46500", "3500", false, day.AddDate(0, 0, 1)),
		settledPayment(3, 8, "90000", "83700", "6300", false, day), // other realtor
	}}
	svc := NewService(lister, "NGN")

	report, err := svc.RealtorReport(context.Background(), 7, Range{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.BookingCount)
	assert.Equal(t, 1, report.CompletedPayoutCount)
	assert.True(t, report.TotalEarnings.Equal(decimal.RequireFromString("169446")))
	assert.True(t, report.CompletedPayouts.Equal(decimal.RequireFromString("122946")))
	assert.True(t, report.PendingPayouts.Equal(decimal.RequireFromString("46500")))
	assert.True(t, report.PlatformCommission.Equal(decimal.RequireFromString("12754")))
	assert.False(t, report.PendingPayouts.IsNegative())
}

func TestRealtorReportDateRange(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{payments: []*payment.Payment{
		settledPayment(1, 7, "132200", "122946", "9254", true, base),
		settledPayment(2, 7, "50000", "46500", "3500", false, base.AddDate(0, 1, 0)),
	}}
	svc := NewService(lister, "NGN")

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	report, err := svc.RealtorReport(context.Background(), 7, Range{From: &from, To: &to})
	require.NoError(t, err)

	assert.Equal(t, 1, report.BookingCount)
	assert.True(t, report.TotalEarnings.Equal(decimal.RequireFromString("122946")))
}

func TestRealtorReportEmpty(t *testing.T) {
	svc := NewService(&fakeLister{}, "NGN")

	report, err := svc.RealtorReport(context.Background(), 7, Range{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.BookingCount)
	assert.True(t, report.TotalEarnings.IsZero())
	assert.True(t, report.PendingPayouts.IsZero())
	assert.False(t, report.PendingPayouts.IsNegative())
	assert.Equal(t, "NGN", report.CurrencyCode)
}

func TestPlatformReport(t *testing.T) {
	day := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{payments: []*payment.Payment{
		settledPayment(1, 7, "132200", "122946", "9254", true, day),
		settledPayment(2, 7, "50000", "46500", "3500", false, day),
		settledPayment(3, 8, "90000", "83700", "6300", false, day),
	}}
	svc := NewService(lister, "NGN")

	report, err := svc.PlatformReport(context.Background(), Range{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.BookingCount)
	assert.Equal(t, 2, report.RealtorCount)
	assert.True(t, report.GrossRevenue.Equal(decimal.RequireFromString("272200")))
	assert.True(t, report.PlatformCommission.Equal(decimal.RequireFromString("19054")))
	assert.True(t, report.CompletedPayouts.Equal(decimal.RequireFromString("122946")))
	assert.True(t, report.PendingPayouts.Equal(decimal.RequireFromString("130200")))
	assert.False(t, report.PendingPayouts.IsNegative())
}

func TestPlatformReportSkipsUnattachedCommission(t *testing.T) {
	day := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	p := settledPayment(1, 7, "132200", "0", "0", false, day)
	p.RealtorEarnings = decimal.NullDecimal{}
	p.PlatformCommission = decimal.NullDecimal{}
	svc := NewService(&fakeLister{payments: []*payment.Payment{p}}, "NGN")

	report, err := svc.PlatformReport(context.Background(), Range{})
	require.NoError(t, err)

	// Gross revenue still counts the booking; commission figures don't.
	assert.Equal(t, 1, report.BookingCount)
	assert.True(t, report.GrossRevenue.Equal(decimal.RequireFromString("132200")))
	assert.True(t, report.PlatformCommission.IsZero())
	assert.True(t, report.PendingPayouts.IsZero())
}
