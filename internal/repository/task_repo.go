package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskboard/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ Tasks = (*TaskRepository)(nil)

const (
	insertTaskSQL = `INSERT INTO tasks (title, description) VALUES (?, ?)`
	// ORDER BY id keeps insertion order.
	selectTasksSQL    = `SELECT id, title, description FROM tasks ORDER BY id ASC`
	selectTaskByIDSQL = `SELECT id, title, description FROM tasks WHERE id = ?`
	updateTaskSQL     = `UPDATE tasks SET title = ?, description = ? WHERE id = ?`
	deleteTaskSQL     = `DELETE FROM tasks WHERE id = ?`
)

// Create inserts a new task row and returns its ID.
func (r *TaskRepository) Create(ctx context.Context, title, description string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertTaskSQL, title, description)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task: %w", err)
	}
	return int(lastID), nil
}

// List returns all tasks in insertion order.
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksSQL)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// GetByID fetches a single task. Returns ErrTaskNotFound for an unknown id.
func (r *TaskRepository) GetByID(ctx context.Context, id int) (*models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx, selectTaskByIDSQL, id).Scan(&t.ID, &t.Title, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return &t, nil
}

// Update overwrites title and description of an existing task.
// Returns ErrTaskNotFound when no row matched.
func (r *TaskRepository) Update(ctx context.Context, id int, title, description string) error {
	res, err := r.db.ExecContext(ctx, updateTaskSQL, title, description, id)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return checkAffected(res, id)
}

// Delete removes a task. Deleting a missing id reports ErrTaskNotFound,
// so a second delete of the same id fails deterministically.
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return checkAffected(res, id)
}

func checkAffected(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for task %d: %w", id, err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
