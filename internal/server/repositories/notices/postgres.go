// Package notices provides a PostgreSQL-backed repository for notice-board
// records.
package notices

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

// ListAll returns every notice, newest first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Notice, error) {
	query := `
		SELECT id, title, details, posted_date
		FROM notices
		ORDER BY posted_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Notice
	for rows.Next() {
		var item models.Notice
		if err := rows.Scan(&item.ID, &item.Title, &item.Details, &item.PostedDate); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a notice and fills in the generated ID.
func (r *PostgresRepository) Create(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	query := `
		INSERT INTO notices (title, details, posted_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, notice.Title, notice.Details, notice.PostedDate).
		Scan(&notice.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return notice, nil
}
