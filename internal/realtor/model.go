package realtor

import "time"

// Realtor represents a host receiving payouts. Full account management
// lives in the main platform; this service only needs contact details.
type Realtor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
