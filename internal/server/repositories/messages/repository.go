package messages

import (
	"context"

	"github.com/dkravets/libshelf/internal/server/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*models.Message, error)
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
}
