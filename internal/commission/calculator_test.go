package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demilade/hostpay/internal/money"
)

func ngn(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.NewFromString(s, "NGN")
	require.NoError(t, err)
	return m
}

// Figures from a real booking: 100k room fee, 10k cleaning, 20k deposit.
func TestComputeBreakdown(t *testing.T) {
	b, err := ComputeBreakdown(ngn(t, "100000"), ngn(t, "10000"), ngn(t, "20000"))
	require.NoError(t, err)

	assert.True(t, b.Subtotal.Equal(ngn(t, "110000")), "subtotal: %s", b.Subtotal)
	assert.True(t, b.ServiceFee.Equal(ngn(t, "2200")), "service fee: %s", b.ServiceFee)
	assert.True(t, b.PlatformFee.Equal(ngn(t, "10000")), "platform fee: %s", b.PlatformFee)
	assert.True(t, b.TotalAmount.Equal(ngn(t, "132200")), "total: %s", b.TotalAmount)

	assert.True(t, b.CleaningFeeToRealtor.Equal(ngn(t, "10000")))
	assert.True(t, b.ServiceFeeToPlatform.Equal(ngn(t, "2200")))
	assert.True(t, b.RoomFeeInEscrow.Equal(ngn(t, "100000")))
	assert.True(t, b.DepositInEscrow.Equal(ngn(t, "20000")))

	assert.True(t, b.RoomFeeSplitRealtor.Equal(ngn(t, "90000")))
	assert.True(t, b.RoomFeeSplitPlatform.Equal(ngn(t, "10000")))
	assert.True(t, b.TotalRealtorEarnings.Equal(ngn(t, "100000")))
}

func TestComputeBreakdownConservation(t *testing.T) {
	cases := []struct{ room, cleaning, deposit string }{
		{"100000", "10000", "20000"},
		{"0", "0", "0"},
		{"333.33", "66.67", "50"},
		{"85000.50", "7500.25", "15000"},
		{"1", "1", "1"},
	}

	for _, tc := range cases {
		room, cleaning, deposit := ngn(t, tc.room), ngn(t, tc.cleaning), ngn(t, tc.deposit)
		b, err := ComputeBreakdown(room, cleaning, deposit)
		require.NoError(t, err)

		assert.True(t, b.Subtotal.Equal(room.Add(cleaning)), "room=%s", tc.room)
		assert.True(t, b.TotalRealtorEarnings.Equal(cleaning.Add(room.MulRate(RoomFeeSplitRealtorRate))),
			"earnings mismatch for room=%s", tc.room)

		// Platform fee and the platform's escrow split are the same 10%
		// of room fee and must stay numerically identical.
		assert.True(t, b.PlatformFee.Equal(b.RoomFeeSplitPlatform), "split drift for room=%s", tc.room)
	}
}

func TestComputeBreakdownDeterministic(t *testing.T) {
	a, err := ComputeBreakdown(ngn(t, "85000.50"), ngn(t, "7500.25"), ngn(t, "15000"))
	require.NoError(t, err)
	b, err := ComputeBreakdown(ngn(t, "85000.50"), ngn(t, "7500.25"), ngn(t, "15000"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeBreakdownRejectsNegatives(t *testing.T) {
	_, err := ComputeBreakdown(ngn(t, "-1"), ngn(t, "0"), ngn(t, "0"))
	assert.ErrorIs(t, err, ErrNegativeAmount)
	_, err = ComputeBreakdown(ngn(t, "0"), ngn(t, "-1"), ngn(t, "0"))
	assert.ErrorIs(t, err, ErrNegativeAmount)
	_, err = ComputeBreakdown(ngn(t, "0"), ngn(t, "0"), ngn(t, "-1"))
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestComputeLegacyBreakdownDefaultRate(t *testing.T) {
	b, err := ComputeLegacyBreakdown(ngn(t, "132200"), nil)
	require.NoError(t, err)

	assert.True(t, b.CommissionRate.Equal(LegacyCommissionRate))
	assert.True(t, b.PlatformCommission.Equal(ngn(t, "9254")), "commission: %s", b.PlatformCommission)
	assert.True(t, b.RealtorEarnings.Equal(ngn(t, "122946")), "earnings: %s", b.RealtorEarnings)
	assert.True(t, b.ProcessingFee.IsZero(), "gateway fees are never deducted from settlement")
}

func TestComputeLegacyBreakdownCustomRate(t *testing.T) {
	rate := decimal.NewFromFloat(0.10)
	b, err := ComputeLegacyBreakdown(ngn(t, "50000"), &rate)
	require.NoError(t, err)

	assert.True(t, b.PlatformCommission.Equal(ngn(t, "5000")))
	assert.True(t, b.RealtorEarnings.Equal(ngn(t, "45000")))
}

func TestComputeLegacyBreakdownInvalidInputs(t *testing.T) {
	_, err := ComputeLegacyBreakdown(ngn(t, "-100"), nil)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	bad := decimal.NewFromFloat(1.5)
	_, err = ComputeLegacyBreakdown(ngn(t, "100"), &bad)
	assert.ErrorIs(t, err, ErrInvalidRate)

	negative := decimal.NewFromFloat(-0.07)
	_, err = ComputeLegacyBreakdown(ngn(t, "100"), &negative)
	assert.ErrorIs(t, err, ErrInvalidRate)
}
