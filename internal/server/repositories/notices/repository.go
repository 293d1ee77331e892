package notices

import (
	"context"

	"github.com/dkravets/libshelf/internal/server/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) (*models.Notice, error)
}
