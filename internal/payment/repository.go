package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const paymentColumns = `
	id, booking_id, realtor_id, guest_id, currency_code, status,
	room_fee, cleaning_fee, security_deposit,
	subtotal, service_fee, total_amount,
	platform_commission, commission_rate, realtor_earnings,
	room_fee_released, deposit_released,
	commission_paid_out, payout_date, payout_reference,
	created_at, updated_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*Payment, error) {
	p := &Payment{}
	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.RealtorID,
		&p.GuestID,
		&p.CurrencyCode,
		&p.Status,
		&p.RoomFee,
		&p.CleaningFee,
		&p.SecurityDeposit,
		&p.Subtotal,
		&p.ServiceFee,
		&p.TotalAmount,
		&p.PlatformCommission,
		&p.CommissionRate,
		&p.RealtorEarnings,
		&p.RoomFeeReleased,
		&p.DepositReleased,
		&p.CommissionPaidOut,
		&p.PayoutDate,
		&p.PayoutReference,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new payment with its fee components and derived totals
func (r *Repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (
			booking_id, realtor_id, guest_id, currency_code, status,
			room_fee, cleaning_fee, security_deposit,
			subtotal, service_fee, total_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + paymentColumns

	created, err := scanPayment(r.db.QueryRowContext(ctx, query,
		p.BookingID, p.RealtorID, p.GuestID, p.CurrencyCode, p.Status,
		p.RoomFee, p.CleaningFee, p.SecurityDeposit,
		p.Subtotal, p.ServiceFee, p.TotalAmount,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

// GetByID retrieves a payment by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	query := `SELECT` + paymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// UpdateCommission writes the computed commission fields onto a payment.
// The caller owns the transaction boundary; this is a plain single-row
// update with no internal locking.
func (r *Repository) UpdateCommission(ctx context.Context, id int64, commission, rate, earnings decimal.Decimal) error {
	query := `
		UPDATE payments
		SET platform_commission = $2, commission_rate = $3, realtor_earnings = $4, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, commission, rate, earnings); err != nil {
		return fmt.Errorf("failed to update commission: %w", err)
	}

	return nil
}

// MarkRoomFeeReleased flags the escrowed room fee as released and moves the
// payment to the given status
func (r *Repository) MarkRoomFeeReleased(ctx context.Context, id int64, status Status) error {
	query := `
		UPDATE payments
		SET room_fee_released = TRUE, status = $2, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("failed to mark room fee released: %w", err)
	}

	return nil
}

// MarkDepositReleased flags the escrowed deposit as released and moves the
// payment to the given status
func (r *Repository) MarkDepositReleased(ctx context.Context, id int64, status Status) error {
	query := `
		UPDATE payments
		SET deposit_released = TRUE, status = $2, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("failed to mark deposit released: %w", err)
	}

	return nil
}

// MarkCommissionPaidOut performs the payout idempotency guard as a single
// conditional update: the row only changes if commission_paid_out is still
// FALSE. Returns false when another payout already won the race.
func (r *Repository) MarkCommissionPaidOut(ctx context.Context, id int64, reference string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET commission_paid_out = TRUE, payout_reference = $2, payout_date = $3, updated_at = NOW()
		WHERE id = $1 AND commission_paid_out = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, id, reference, paidAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark commission paid out: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read payout update result: %w", err)
	}

	return affected == 1, nil
}

// Filter narrows settled-payment listings for reporting
type Filter struct {
	RealtorID *int64
	From      *time.Time // inclusive lower bound on created_at
	To        *time.Time // exclusive upper bound on created_at
}

// ListSettled retrieves payments whose escrow has (at least partially)
// released, optionally filtered by realtor and date range
func (r *Repository) ListSettled(ctx context.Context, f Filter) ([]*Payment, error) {
	query := `SELECT` + paymentColumns + `
		FROM payments
		WHERE status IN ($1, $2)`
	args := []interface{}{StatusPartiallyReleased, StatusSettled}

	if f.RealtorID != nil {
		args = append(args, *f.RealtorID)
		query += fmt.Sprintf(" AND realtor_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settled payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
