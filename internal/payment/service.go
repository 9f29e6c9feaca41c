package payment

import (
	"context"
	"errors"

	"github.com/demilade/hostpay/internal/commission"
	"github.com/demilade/hostpay/internal/money"
)

// Common errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidFees     = errors.New("fee components cannot be negative")
)

// Service handles payment business logic
type Service struct {
	repo *Repository
}

// NewService creates a new payment service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Record stores an externally verified booking payment. The gateway flow
// itself lives outside this service; by the time a payment reaches here it
// is confirmed, so it enters escrow as HELD. Derived totals come from the
// commission calculator so the stored figures and any later preview can
// never disagree.
func (s *Service) Record(ctx context.Context, req *CreatePaymentRequest, defaultCurrency string) (*Payment, error) {
	currency := req.CurrencyCode
	if currency == "" {
		currency = defaultCurrency
	}

	breakdown, err := commission.ComputeBreakdown(
		money.New(req.RoomFee, currency),
		money.New(req.CleaningFee, currency),
		money.New(req.SecurityDeposit, currency),
	)
	if err != nil {
		if errors.Is(err, commission.ErrNegativeAmount) {
			return nil, ErrInvalidFees
		}
		return nil, err
	}

	p := &Payment{
		BookingID:       req.BookingID,
		RealtorID:       req.RealtorID,
		GuestID:         req.GuestID,
		CurrencyCode:    currency,
		Status:          StatusHeld,
		RoomFee:         req.RoomFee,
		CleaningFee:     req.CleaningFee,
		SecurityDeposit: req.SecurityDeposit,
		Subtotal:        breakdown.Subtotal.Amount(),
		ServiceFee:      breakdown.ServiceFee.Amount(),
		TotalAmount:     breakdown.TotalAmount.Amount(),
	}

	return s.repo.Create(ctx, p)
}

// GetByID retrieves a payment by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}
