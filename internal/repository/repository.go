package repository

import (
	"context"
	"database/sql"
	"errors"

	"taskboard/internal/models"
	"taskboard/internal/repository/db"
)

// Storage-level sentinel errors surfaced to the service layer.
var (
	// ErrDuplicateUsername reports a violation of the UNIQUE constraint on
	// users.username. It is detected from the insert, never pre-checked.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrTaskNotFound reports an update/delete/get against an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
)

type Users interface {
	Create(username, passwordHash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

type Tasks interface {
	Create(ctx context.Context, title, description string) (int, error)
	List(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	Update(ctx context.Context, id int, title, description string) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users Users
	Tasks Tasks
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(sqlDB),
		Tasks: NewTaskRepository(sqlDB),
	}
}

// InitDB re-exports the sqlite bootstrap so main only imports the repository package.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
