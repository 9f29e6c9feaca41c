package realtor

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles realtor data access
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new realtor repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a realtor by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Realtor, error) {
	query := `
		SELECT id, name, email, created_at
		FROM realtors
		WHERE id = $1
	`

	rl := &Realtor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rl.ID, &rl.Name, &rl.Email, &rl.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get realtor: %w", err)
	}

	return rl, nil
}
