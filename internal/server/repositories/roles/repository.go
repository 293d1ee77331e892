package roles

import (
	"context"

	"github.com/dkravets/libshelf/internal/server/models"
)

type Repository interface {
	GetOrCreate(ctx context.Context, name string) (*models.Role, error)
	Assign(ctx context.Context, userID, roleID string) error
	ListForUser(ctx context.Context, userID string) ([]*models.Role, error)
}
