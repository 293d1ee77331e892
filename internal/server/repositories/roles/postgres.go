// Package roles provides a PostgreSQL-backed repository for named roles and
// user–role associations.
package roles

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

// GetOrCreate returns the role with the given name, creating it if absent.
// The upsert makes concurrent calls with the same name converge on one row:
// the DO UPDATE arm turns a conflicting insert into a no-op write so that
// RETURNING always yields the surviving row's id.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, name string) (*models.Role, error) {
	query := `
		INSERT INTO roles (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	role := &models.Role{Name: name}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&role.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return role, nil
}

// Assign links a user to a role. Assigning an already-held role is a no-op.
func (r *PostgresRepository) Assign(ctx context.Context, userID, roleID string) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, roleID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListForUser returns the roles held by the given user.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		result = append(result, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
