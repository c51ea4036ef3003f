package infrastructure

import (
	"context"
	"database/sql"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
)

// In-memory repository doubles for service tests.

type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryRepository) ExistsByID(ctx context.Context, categoryID int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

type MockTaskRepository struct {
	Tasks      []domain.Task
	Categories []domain.Category
	NextID     int64
	Updates    []domain.TaskUpdate
	Err        error
}

func (m *MockTaskRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tasks, nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == taskID {
			task := m.Tasks[i]
			return &task, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockTaskRepository) ExistsByID(ctx context.Context, taskID int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == taskID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTaskRepository) Insert(ctx context.Context, task domain.NewTask) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.NextID++
	category := domain.Category{ID: task.CategoryID}
	for _, c := range m.Categories {
		if c.ID == task.CategoryID {
			category = c
		}
	}
	m.Tasks = append(m.Tasks, domain.Task{
		ID:          m.NextID,
		Title:       task.Title,
		Description: task.Description,
		Category:    category,
		Completed:   false,
	})
	return m.NextID, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, taskID int64, update domain.TaskUpdate) error {
	if m.Err != nil {
		return m.Err
	}
	m.Updates = append(m.Updates, update)
	for i := range m.Tasks {
		if m.Tasks[i].ID != taskID {
			continue
		}
		if update.Title != nil {
			m.Tasks[i].Title = *update.Title
		}
		if update.Description != nil {
			m.Tasks[i].Description = *update.Description
		}
		if update.CategoryID != nil {
			m.Tasks[i].Category = domain.Category{ID: *update.CategoryID}
			for _, c := range m.Categories {
				if c.ID == *update.CategoryID {
					m.Tasks[i].Category = c
				}
			}
		}
		if update.Completed != nil {
			m.Tasks[i].Completed = *update.Completed
		}
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, taskID int64) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == taskID {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
