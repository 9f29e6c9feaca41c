package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles audit log persistence. The log is append-only; there
// are no update or delete paths.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new audit repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts a new audit entry
func (r *Repository) Append(ctx context.Context, e *Entry) error {
	query := `
		INSERT INTO audit_entries (action, entity_type, entity_id, actor_id, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		e.Action, e.EntityType, e.EntityID, e.ActorID, []byte(e.Details),
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

// ListByEntity retrieves all audit entries for one entity, oldest first
func (r *Repository) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]*Entry, error) {
	query := `
		SELECT id, action, entity_type, entity_id, actor_id, details, created_at
		FROM audit_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		var details []byte
		if err := rows.Scan(&e.ID, &e.Action, &e.EntityType, &e.EntityID, &e.ActorID, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		e.Details = details
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
