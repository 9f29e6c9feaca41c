package payout

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demilade/hostpay/internal/audit"
	"github.com/demilade/hostpay/internal/money"
	"github.com/demilade/hostpay/internal/payment"
)

type fakePaymentStore struct {
	payments map[int64]*payment.Payment
}

func (s *fakePaymentStore) GetByID(_ context.Context, id int64) (*payment.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakePaymentStore) MarkCommissionPaidOut(_ context.Context, id int64, reference string, paidAt time.Time) (bool, error) {
	p := s.payments[id]
	if p.CommissionPaidOut {
		return false, nil
	}
	p.CommissionPaidOut = true
	p.PayoutReference = &reference
	p.PayoutDate = &paidAt
	return true, nil
}

type fakeAuditLog struct {
	entries []*audit.Entry
	err     error
}

func (l *fakeAuditLog) Append(_ context.Context, e *audit.Entry) error {
	if l.err != nil {
		return l.err
	}
	l.entries = append(l.entries, e)
	return nil
}

type fakeNotifier struct {
	calls chan string // payout references, one per call
	err   error
}

func (n *fakeNotifier) NotifyRealtorPayout(_ context.Context, _ int64, _ money.Money, _ int64, reference string) error {
	n.calls <- reference
	return n.err
}

func payoutReadyPayment(id int64) *payment.Payment {
	return &payment.Payment{
		ID:              id,
		BookingID:       200 + id,
		RealtorID:       7,
		CurrencyCode:    "NGN",
		Status:          payment.StatusSettled,
		TotalAmount:     decimal.RequireFromString("132200"),
		RealtorEarnings: decimal.NewNullDecimal(decimal.RequireFromString("122946")),
		CommissionRate:  decimal.NewNullDecimal(decimal.RequireFromString("0.07")),
	}
}

func newTestService(store PaymentStore, log *fakeAuditLog, notifier *fakeNotifier) *Service {
	svc := NewService(store, log, notifier)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestProcessPayout(t *testing.T) {
	store := &fakePaymentStore{payments: map[int64]*payment.Payment{1: payoutReadyPayment(1)}}
	auditLog := &fakeAuditLog{}
	notifier := &fakeNotifier{calls: make(chan string, 1)}
	svc := newTestService(store, auditLog, notifier)

	p, err := svc.ProcessPayout(context.Background(), 1, 99, "TRF-12345")
	require.NoError(t, err)

	assert.True(t, p.CommissionPaidOut)
	require.NotNil(t, p.PayoutReference)
	assert.Equal(t, "TRF-12345", *p.PayoutReference)
	require.NotNil(t, p.PayoutDate)
	assert.Equal(t, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC), *p.PayoutDate)

	require.Len(t, auditLog.entries, 1)
	entry := auditLog.entries[0]
	assert.Equal(t, audit.ActionCommissionPayout, entry.Action)
	assert.Equal(t, int64(1), entry.EntityID)
	assert.Equal(t, int64(99), entry.ActorID)

	var details audit.PayoutDetails
	require.NoError(t, json.Unmarshal(entry.Details, &details))
	assert.Equal(t, int64(7), details.RealtorID)
	assert.Equal(t, "NGN", details.Currency)
	assert.Equal(t, "TRF-12345", details.Reference)
	assert.True(t, details.Amount.Equal(decimal.RequireFromString("122946")))

	select {
	case ref := <-notifier.calls:
		assert.Equal(t, "TRF-12345", ref)
	case <-time.After(time.Second):
		t.Fatal("realtor was never notified")
	}
}

func TestProcessPayoutGeneratesFallbackReference(t *testing.T) {
	store := &fakePaymentStore{payments: map[int64]*payment.Payment{1: payoutReadyPayment(1)}}
	notifier := &fakeNotifier{calls: make(chan string, 1)}
	svc := newTestService(store, &fakeAuditLog{}, notifier)

	p, err := svc.ProcessPayout(context.Background(), 1, 99, "")
	require.NoError(t, err)

	require.NotNil(t, p.PayoutReference)
	assert.True(t, strings.HasPrefix(*p.PayoutReference, "PAYOUT-"), "reference %q", *p.PayoutReference)
	<-notifier.calls
}

func TestProcessPayoutTwiceConflicts(t *testing.T) {
	store := &fakePaymentStore{payments: map[int64]*payment.Payment{1: payoutReadyPayment(1)}}
	auditLog := &fakeAuditLog{}
	notifier := &fakeNotifier{calls: make(chan string, 2)}
	svc := newTestService(store, auditLog, notifier)

	_, err := svc.ProcessPayout(context.Background(), 1, 99, "TRF-1")
	require.NoError(t, err)

	_, err = svc.ProcessPayout(context.Background(), 1, 99, "TRF-2")
	assert.ErrorIs(t, err, ErrAlreadyPaidOut)

	// One payout, one audit entry, unchanged reference.
	assert.Len(t, auditLog.entries, 1)
	assert.Equal(t, "TRF-1", *store.payments[1].PayoutReference)
}

// staleReadStore simulates a lost race: the read sees an unpaid payment but
// another request flips the flag before our conditional update runs.
type staleReadStore struct {
	*fakePaymentStore
}

func (s *staleReadStore) GetByID(ctx context.Context, id int64) (*payment.Payment, error) {
	p, err := s.fakePaymentStore.GetByID(ctx, id)
	if p != nil {
		p.CommissionPaidOut = false
	}
	return p, err
}

func TestProcessPayoutConditionalUpdateRace(t *testing.T) {
	paid := payoutReadyPayment(1)
	paid.CommissionPaidOut = true
	store := &staleReadStore{&fakePaymentStore{payments: map[int64]*payment.Payment{1: paid}}}
	auditLog := &fakeAuditLog{}
	svc := newTestService(store, auditLog, &fakeNotifier{calls: make(chan string, 1)})

	_, err := svc.ProcessPayout(context.Background(), 1, 99, "TRF-1")
	assert.ErrorIs(t, err, ErrAlreadyPaidOut)
	assert.Empty(t, auditLog.entries)
}

func TestProcessPayoutWithoutEarnings(t *testing.T) {
	p := payoutReadyPayment(1)
	p.RealtorEarnings = decimal.NullDecimal{}
	store := &fakePaymentStore{payments: map[int64]*payment.Payment{1: p}}
	svc := newTestService(store, &fakeAuditLog{}, &fakeNotifier{calls: make(chan string, 1)})

	_, err := svc.ProcessPayout(context.Background(), 1, 99, "TRF-1")
	assert.ErrorIs(t, err, ErrEarningsNotComputed)
}

func TestProcessPayoutNotFound(t *testing.T) {
	store := &fakePaymentStore{payments: map[int64]*payment.Payment{}}
	svc := newTestService(store, &fakeAuditLog{}, &fakeNotifier{calls: make(chan string, 1)})

	_, err := svc.ProcessPayout(context.Background(), 42, 99, "")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestProcessPayoutSucceedsWhenNotificationFails(t *testing.T) {
	store := &fakePaymentStore{payments: map[int64]*payment.Payment{1: payoutReadyPayment(1)}}
	notifier := &fakeNotifier{calls: make(chan string, 1), err: errors.New("smtp relay down")}
	svc := newTestService(store, &fakeAuditLog{}, notifier)

	p, err := svc.ProcessPayout(context.Background(), 1, 99, "TRF-1")
	require.NoError(t, err)
	assert.True(t, p.CommissionPaidOut)

	select {
	case <-notifier.calls:
	case <-time.After(time.Second):
		t.Fatal("notification was never attempted")
	}
}
