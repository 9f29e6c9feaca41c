package settlement

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/demilade/hostpay/internal/commission"
	"github.com/demilade/hostpay/internal/money"
	"github.com/demilade/hostpay/internal/payment"
)

// Common errors
var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrPaymentNotSettled      = errors.New("cannot calculate commission for incomplete payment")
	ErrNotInEscrow            = errors.New("payment is not in escrow")
	ErrRoomFeeAlreadyReleased = errors.New("room fee already released")
	ErrDepositAlreadyReleased = errors.New("deposit already released")
)

// PaymentStore is the slice of the payment repository the orchestrator
// needs. The host must wrap calls in a transaction boundary; no locking
// happens here.
type PaymentStore interface {
	GetByID(ctx context.Context, id int64) (*payment.Payment, error)
	UpdateCommission(ctx context.Context, id int64, commission, rate, earnings decimal.Decimal) error
	MarkRoomFeeReleased(ctx context.Context, id int64, status payment.Status) error
	MarkDepositReleased(ctx context.Context, id int64, status payment.Status) error
}

// Service orchestrates escrow settlement over payment records. It reacts to
// externally scheduled transitions (the 1-hour post-check-in room-fee
// release, the 48-hour post-checkout deposit window); it owns no timers.
type Service struct {
	payments PaymentStore
}

// NewService creates a new settlement service
func NewService(payments PaymentStore) *Service {
	return &Service{payments: payments}
}

// AttachCommission computes the flat-rate commission for a verified payment
// and persists platform_commission, commission_rate and realtor_earnings.
// A nil customRate uses the default legacy rate. Only payments in HELD,
// PARTIALLY_RELEASED or SETTLED may have commission attached.
func (s *Service) AttachCommission(ctx context.Context, paymentID int64, customRate *decimal.Decimal) error {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPaymentNotFound
	}

	if !p.CommissionComputable() {
		return ErrPaymentNotSettled
	}

	// Persisted commission fields predate the room-fee split model, so
	// this path stays on the legacy flat-rate calculation.
	breakdown, err := commission.ComputeLegacyBreakdown(money.New(p.TotalAmount, p.CurrencyCode), customRate)
	if err != nil {
		return err
	}

	return s.payments.UpdateCommission(ctx, paymentID,
		breakdown.PlatformCommission.Amount(),
		breakdown.CommissionRate,
		breakdown.RealtorEarnings.Amount(),
	)
}

// ReleaseRoomFee releases the escrowed room fee. Called by the scheduler
// one hour after check-in if no dispute was raised.
func (s *Service) ReleaseRoomFee(ctx context.Context, paymentID int64) (*payment.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}

	if !p.InEscrow() {
		return nil, ErrNotInEscrow
	}
	if p.RoomFeeReleased {
		return nil, ErrRoomFeeAlreadyReleased
	}

	next := payment.StatusPartiallyReleased
	if p.DepositReleased {
		next = payment.StatusSettled
	}

	if err := s.payments.MarkRoomFeeReleased(ctx, paymentID, next); err != nil {
		return nil, err
	}

	p.RoomFeeReleased = true
	p.Status = next
	return p, nil
}

// ReleaseDeposit releases the escrowed security deposit. Called by the
// scheduler 48 hours after checkout, minus any dispute deduction already
// resolved out-of-band.
func (s *Service) ReleaseDeposit(ctx context.Context, paymentID int64) (*payment.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}

	if !p.InEscrow() {
		return nil, ErrNotInEscrow
	}
	if p.DepositReleased {
		return nil, ErrDepositAlreadyReleased
	}

	next := payment.StatusPartiallyReleased
	if p.RoomFeeReleased {
		next = payment.StatusSettled
	}

	if err := s.payments.MarkDepositReleased(ctx, paymentID, next); err != nil {
		return nil, err
	}

	p.DepositReleased = true
	p.Status = next
	return p, nil
}
