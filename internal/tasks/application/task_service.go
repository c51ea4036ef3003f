package application

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
	taskErrors "github.com/dmartinrz/tareas-backend/internal/tasks/errors"
)

type TaskService struct {
	taskRepo     domain.TaskRepository
	categoryRepo domain.CategoryRepository
}

func NewTaskService(taskRepo domain.TaskRepository, categoryRepo domain.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, taskErrors.NewPersistenceError("Error al obtener tareas", err)
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.NewTask) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, taskErrors.ErrEmptyTitle
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, taskErrors.ErrEmptyDescription
	}

	exists, err := s.categoryRepo.ExistsByID(ctx, input.CategoryID)
	if err != nil {
		return nil, taskErrors.NewPersistenceError("Error al verificar categoría", err)
	}
	if !exists {
		return nil, taskErrors.NewCategoryReferenceError(input.CategoryID)
	}

	taskID, err := s.taskRepo.Insert(ctx, input)
	if err != nil {
		return nil, taskErrors.NewPersistenceError("Error al crear tarea", err)
	}

	return s.getTask(ctx, taskID)
}

// UpdateTask applies a partial update. Checks run in a fixed order: the task
// must exist, then a supplied category must exist, then supplied text fields
// must be non-empty; only then does the mutation run. A request with several
// problems reports the first one in that order.
func (s *TaskService) UpdateTask(ctx context.Context, taskID int64, update domain.TaskUpdate) (*domain.Task, error) {
	exists, err := s.taskRepo.ExistsByID(ctx, taskID)
	if err != nil {
		return nil, taskErrors.NewPersistenceError("Error al verificar tarea", err)
	}
	if !exists {
		return nil, taskErrors.NewTaskNotFoundError(taskID)
	}

	if update.CategoryID != nil {
		exists, err := s.categoryRepo.ExistsByID(ctx, *update.CategoryID)
		if err != nil {
			return nil, taskErrors.NewPersistenceError("Error al verificar categoría", err)
		}
		if !exists {
			return nil, taskErrors.NewCategoryReferenceError(*update.CategoryID)
		}
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, taskErrors.ErrEmptyTitle
	}
	if update.Description != nil && strings.TrimSpace(*update.Description) == "" {
		return nil, taskErrors.ErrEmptyDescription
	}

	// An empty payload is a valid no-op: skip the mutation, return the
	// unchanged task.
	if !update.Empty() {
		if err := s.taskRepo.Update(ctx, taskID, update); err != nil {
			return nil, taskErrors.NewPersistenceError("Error al actualizar tarea", err)
		}
	}

	return s.getTask(ctx, taskID)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID int64) error {
	affected, err := s.taskRepo.Delete(ctx, taskID)
	if err != nil {
		return taskErrors.NewPersistenceError("Error al borrar tarea", err)
	}
	if affected == 0 {
		return taskErrors.NewTaskNotFoundError(taskID)
	}
	return nil
}

func (s *TaskService) getTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, taskErrors.NewTaskNotFoundError(taskID)
		}
		return nil, taskErrors.NewPersistenceError("Error al obtener tarea", err)
	}
	return task, nil
}
