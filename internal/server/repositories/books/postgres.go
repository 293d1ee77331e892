// Package books provides a PostgreSQL-backed repository for catalog records.
package books

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

// ListAll returns every book, newest publication first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Book, error) {
	query := `
		SELECT id, title, author, publisher, edition, pages, published_date
		FROM books
		ORDER BY published_date DESC, title
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Book
	for rows.Next() {
		var item models.Book
		if err := rows.Scan(&item.ID, &item.Title, &item.Author, &item.Publisher,
			&item.Edition, &item.Pages, &item.PublishedDate); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a book and fills in the generated ID.
func (r *PostgresRepository) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	query := `
		INSERT INTO books (title, author, publisher, edition, pages, published_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, book.Title, book.Author, book.Publisher,
		book.Edition, book.Pages, book.PublishedDate).Scan(&book.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return book, nil
}
