package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Action identifies what an audit entry records
type Action string

const (
	ActionCommissionPayout Action = "COMMISSION_PAYOUT"
)

// Entry is one append-only audit record. Entries are never updated or
// deleted; Details holds a typed, action-specific payload as JSON.
type Entry struct {
	ID         int64           `json:"id"`
	Action     Action          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   int64           `json:"entity_id"`
	ActorID    int64           `json:"actor_id"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PayoutDetails is the Details payload for ActionCommissionPayout. Each
// action gets its own schema so audit consumers can decode safely instead
// of digging through an untyped map.
type PayoutDetails struct {
	RealtorID int64           `json:"realtor_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Reference string          `json:"reference"`
}

// NewPayoutEntry builds the audit entry for a completed commission payout.
func NewPayoutEntry(actorID, paymentID int64, details PayoutDetails) (*Entry, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payout details: %w", err)
	}

	return &Entry{
		Action:     ActionCommissionPayout,
		EntityType: "PAYMENT",
		EntityID:   paymentID,
		ActorID:    actorID,
		Details:    raw,
	}, nil
}
