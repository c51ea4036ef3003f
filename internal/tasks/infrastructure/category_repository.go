package infrastructure

import (
	"context"
	"database/sql"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, nombre FROM categorias ORDER BY nombre")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) ExistsByID(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categorias WHERE id = ?)"
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
