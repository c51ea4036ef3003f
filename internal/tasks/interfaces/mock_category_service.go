package interfaces

import (
	"context"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	err        error
}

func (m *MockCategoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}
