package service

import (
	"context"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repository"
)

type Authorization interface {
	Register(username, password string) (int, error)
	Login(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	UserByID(id int) (*models.User, error)
}

// Tasks is the CRUD surface over the task board, shared by the page
// routes and the JSON API routes.
type Tasks interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id int) (*models.Task, error)
	Create(ctx context.Context, title, description string) (*models.Task, error)
	Update(ctx context.Context, id int, p UpdateParams) (*models.Task, error)
	Delete(ctx context.Context, id int) error
}

// UpdateParams carries a partial task update; nil fields keep the stored value.
type UpdateParams struct {
	Title       *string
	Description *string
}

// AuthConfig holds session settings loaded from config at startup,
// replacing any package-level secret.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	Tasks
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Tasks:         NewTaskService(repos.Tasks),
	}
}
