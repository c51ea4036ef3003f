package application

import (
	"context"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
	taskErrors "github.com/dmartinrz/tareas-backend/internal/tasks/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, taskErrors.NewPersistenceError("Error al obtener categorías", err)
	}
	return categories, nil
}
