package payout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/demilade/hostpay/internal/audit"
	"github.com/demilade/hostpay/internal/money"
	"github.com/demilade/hostpay/internal/payment"
)

// Common errors
var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrEarningsNotComputed = errors.New("realtor earnings have not been computed")
	ErrAlreadyPaidOut      = errors.New("payout already processed")
)

// PaymentStore is the slice of the payment repository the payout processor
// needs. MarkCommissionPaidOut must be a conditional update so two
// concurrent payouts for the same payment cannot both succeed.
type PaymentStore interface {
	GetByID(ctx context.Context, id int64) (*payment.Payment, error)
	MarkCommissionPaidOut(ctx context.Context, id int64, reference string, paidAt time.Time) (bool, error)
}

// AuditLog appends immutable payout audit entries.
type AuditLog interface {
	Append(ctx context.Context, e *audit.Entry) error
}

// Notifier tells the realtor about a completed payout. Failures are logged
// and swallowed; payout success never depends on notification success.
type Notifier interface {
	NotifyRealtorPayout(ctx context.Context, realtorID int64, amount money.Money, paymentID int64, reference string) error
}

// Service finalizes realtor payouts
type Service struct {
	payments PaymentStore
	auditLog AuditLog
	notifier Notifier
	now      func() time.Time
}

// NewService creates a new payout service
func NewService(payments PaymentStore, auditLog AuditLog, notifier Notifier) *Service {
	return &Service{
		payments: payments,
		auditLog: auditLog,
		notifier: notifier,
		now:      time.Now,
	}
}

// ProcessPayout marks a payment's realtor earnings as paid out. The
// operation is idempotent-rejecting: a second call for the same payment
// fails with ErrAlreadyPaidOut so the caller knows it was already done.
// An empty reference gets a generated fallback token.
func (s *Service) ProcessPayout(ctx context.Context, paymentID, actorID int64, reference string) (*payment.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}

	if !p.CommissionAttached() {
		return nil, ErrEarningsNotComputed
	}
	if p.CommissionPaidOut {
		return nil, ErrAlreadyPaidOut
	}

	paidAt := s.now()
	if reference == "" {
		reference = fmt.Sprintf("PAYOUT-%d-%s", paidAt.Unix(), uuid.NewString())
	}

	// The conditional update is the real guard; the checks above only
	// produce friendlier errors. If another request won the race between
	// our read and this write, zero rows change and we report the conflict.
	updated, err := s.payments.MarkCommissionPaidOut(ctx, paymentID, reference, paidAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrAlreadyPaidOut
	}

	earnings := money.New(p.RealtorEarnings.Decimal, p.CurrencyCode)

	entry, err := audit.NewPayoutEntry(actorID, paymentID, audit.PayoutDetails{
		RealtorID: p.RealtorID,
		Amount:    p.RealtorEarnings.Decimal,
		Currency:  p.CurrencyCode,
		Reference: reference,
	})
	if err != nil {
		return nil, err
	}
	if err := s.auditLog.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("payout recorded but audit append failed: %w", err)
	}

	// Fire-and-forget: the payout already succeeded, so notification
	// failures are logged and dropped. Uses a fresh context because the
	// request context dies when the handler returns.
	go func() {
		if err := s.notifier.NotifyRealtorPayout(context.Background(), p.RealtorID, earnings, paymentID, reference); err != nil {
			log.Printf("payout notification failed for payment %d: %v", paymentID, err)
		}
	}()

	p.CommissionPaidOut = true
	p.PayoutDate = &paidAt
	p.PayoutReference = &reference
	return p, nil
}
