package books

import (
	"context"

	"github.com/dkravets/libshelf/internal/server/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*models.Book, error)
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
}
