package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/demilade/hostpay/internal/money"
	"github.com/demilade/hostpay/internal/realtor"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not the recipient of this notification")
	ErrRealtorNotFound      = errors.New("realtor not found")
)

// RealtorDirectory resolves realtor contact details for outbound email.
type RealtorDirectory interface {
	GetByID(ctx context.Context, id int64) (*realtor.Realtor, error)
}

// Service handles notification business logic
type Service struct {
	repo     *Repository
	realtors RealtorDirectory
	mailer   Mailer
}

// NewService creates a new notification service
func NewService(repo *Repository, realtors RealtorDirectory, mailer Mailer) *Service {
	return &Service{repo: repo, realtors: realtors, mailer: mailer}
}

// ListByRecipientID retrieves notifications for a user
func (s *Service) ListByRecipientID(ctx context.Context, recipientID int64, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByRecipientID(ctx, recipientID, perPage, offset, unreadOnly)
}

// MarkAsRead marks a notification as read
func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotificationNotFound
	}
	if n.RecipientID != userID {
		return ErrNotRecipient
	}

	return s.repo.MarkAsRead(ctx, id)
}

// GetUnreadCount returns the count of unread notifications
func (s *Service) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// NotifyRealtorPayout records an in-app notification and emails the realtor
// that their earnings were paid out. The caller treats the whole step as
// best-effort; any error returned here must not fail the payout.
func (s *Service) NotifyRealtorPayout(ctx context.Context, realtorID int64, amount money.Money, paymentID int64, reference string) error {
	rl, err := s.realtors.GetByID(ctx, realtorID)
	if err != nil {
		return err
	}
	if rl == nil {
		return ErrRealtorNotFound
	}

	message := fmt.Sprintf("Your payout of %s has been processed (ref %s)", amount, reference)
	entityType := "PAYMENT"
	if _, err := s.repo.Create(ctx, realtorID, message, &entityType, &paymentID); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour earnings of %s have been paid out.\nReference: %s\n\nThe HostPay Team",
		rl.Name, amount, reference,
	)
	return s.mailer.Send(rl.Email, "Your payout has been processed", body)
}
