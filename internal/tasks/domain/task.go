package domain

import "context"

// Task is the API-facing shape: the category is embedded by value, the
// storage layer keeps only the foreign key.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Category    Category `json:"categoria"`
	Completed   bool     `json:"completada"`
}

// NewTask is the creation payload. Completed always starts false.
type NewTask struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	CategoryID  int64  `json:"categoria_id"`
}

// TaskUpdate is a partial-update payload; nil means "field not supplied".
type TaskUpdate struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descripcion"`
	CategoryID  *int64  `json:"categoria_id"`
	Completed   *bool   `json:"completada"`
}

// Empty reports whether no field was supplied at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.CategoryID == nil && u.Completed == nil
}

type TaskRepository interface {
	FindAll(ctx context.Context) ([]Task, error)
	FindByID(ctx context.Context, taskID int64) (*Task, error)
	ExistsByID(ctx context.Context, taskID int64) (bool, error)
	Insert(ctx context.Context, task NewTask) (int64, error)
	Update(ctx context.Context, taskID int64, update TaskUpdate) error
	Delete(ctx context.Context, taskID int64) (int64, error)
}
