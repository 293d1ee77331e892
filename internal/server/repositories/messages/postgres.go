// Package messages provides a PostgreSQL-backed repository for contact-form
// submissions.
package messages

import (
	"context"
	"fmt"

	"github.com/dkravets/libshelf/internal/dbx"
	"github.com/dkravets/libshelf/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListAll returns every message, newest first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Message, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM messages
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		var item models.Message
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Message, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a message and fills in the generated ID and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, message.Name, message.Email, message.Message).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return message, nil
}
