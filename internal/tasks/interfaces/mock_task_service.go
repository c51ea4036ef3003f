package interfaces

import (
	"context"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
)

type MockTaskService struct {
	tasks []domain.Task
	task  *domain.Task
	err   error

	createdWith *domain.NewTask
	updatedID   int64
	updatedWith *domain.TaskUpdate
	deletedID   int64
}

func (m *MockTaskService) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tasks, nil
}

func (m *MockTaskService) CreateTask(ctx context.Context, input domain.NewTask) (*domain.Task, error) {
	m.createdWith = &input
	if m.err != nil {
		return nil, m.err
	}
	return m.task, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, taskID int64, update domain.TaskUpdate) (*domain.Task, error) {
	m.updatedID = taskID
	m.updatedWith = &update
	if m.err != nil {
		return nil, m.err
	}
	return m.task, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, taskID int64) error {
	m.deletedID = taskID
	return m.err
}
