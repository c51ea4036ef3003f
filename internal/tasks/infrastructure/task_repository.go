package infrastructure

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
)

// taskSelect is the joined read shape. INNER JOIN: a task whose category
// disappeared out-of-band is invisible to reads.
const taskSelect = `SELECT t.id, t.titulo, t.descripcion, t.completada,
       c.id AS categoria_id, c.nombre AS categoria_nombre
FROM tareas t
INNER JOIN categorias c ON t.categoria_id = c.id`

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// taskRow is one flat joined row before mapping to the nested entity.
type taskRow struct {
	id           int64
	title        string
	description  string
	completed    bool
	categoryID   int64
	categoryName string
}

// mapTask reshapes a flat joined row into the nested API entity.
func mapTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.id,
		Title:       row.title,
		Description: row.description,
		Completed:   row.completed,
		Category: domain.Category{
			ID:   row.categoryID,
			Name: row.categoryName,
		},
	}
}

// FindAll returns every task, incomplete first, newest first within each group.
func (r *TaskRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, taskSelect+`
ORDER BY t.completada, t.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var row taskRow
		if err := rows.Scan(&row.id, &row.title, &row.description, &row.completed, &row.categoryID, &row.categoryName); err != nil {
			return nil, err
		}
		tasks = append(tasks, mapTask(row))
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	var row taskRow
	err := r.db.QueryRowContext(ctx, taskSelect+`
WHERE t.id = ?`, taskID).Scan(&row.id, &row.title, &row.description, &row.completed, &row.categoryID, &row.categoryName)
	if err != nil {
		return nil, err
	}

	task := mapTask(row)
	return &task, nil
}

func (r *TaskRepository) ExistsByID(ctx context.Context, taskID int64) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM tareas WHERE id = ?)"
	err := r.db.QueryRowContext(ctx, query, taskID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.NewTask) (int64, error) {
	query := `INSERT INTO tareas (titulo, descripcion, categoria_id, completada)
              VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.CategoryID, false)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// buildTaskUpdate renders an UPDATE touching only the supplied columns.
// Clause text and bound value are appended together and joined once, so a
// single supplied field never produces a stray separator. ok is false when
// no field was supplied; there is nothing valid to render then.
func buildTaskUpdate(taskID int64, update domain.TaskUpdate) (query string, args []any, ok bool) {
	var clauses []string

	if update.Title != nil {
		clauses = append(clauses, "titulo = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		clauses = append(clauses, "descripcion = ?")
		args = append(args, *update.Description)
	}
	if update.CategoryID != nil {
		clauses = append(clauses, "categoria_id = ?")
		args = append(args, *update.CategoryID)
	}
	if update.Completed != nil {
		clauses = append(clauses, "completada = ?")
		args = append(args, *update.Completed)
	}

	if len(clauses) == 0 {
		return "", nil, false
	}

	query = "UPDATE tareas SET " + strings.Join(clauses, ", ") + " WHERE id = ?"
	args = append(args, taskID)
	return query, args, true
}

// Update mutates only the supplied fields. An empty update is a no-op.
func (r *TaskRepository) Update(ctx context.Context, taskID int64, update domain.TaskUpdate) error {
	query, args, ok := buildTaskUpdate(taskID, update)
	if !ok {
		return nil
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes the task and reports how many rows went away.
func (r *TaskRepository) Delete(ctx context.Context, taskID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tareas WHERE id = ?", taskID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
