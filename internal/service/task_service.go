package service

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/models"
	"taskboard/internal/repository"
)

// ErrTitleRequired rejects task creation without a title.
var ErrTitleRequired = errors.New("title is required")

// TaskService is thin orchestration over the task repository.
// It stays transport-agnostic: notification publishing happens at the
// handler that owns the route, not here.
type TaskService struct {
	tasks repository.Tasks
}

func NewTaskService(tasks repository.Tasks) *TaskService {
	return &TaskService{tasks: tasks}
}

var _ Tasks = (*TaskService)(nil)

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id int) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Create validates the title and appends a new task. Never idempotent:
// each call adds a row.
func (s *TaskService) Create(ctx context.Context, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	id, err := s.tasks.Create(ctx, title, description)
	if err != nil {
		return nil, err
	}
	return &models.Task{ID: id, Title: title, Description: description}, nil
}

// Update applies a partial update: nil fields keep the stored values.
// The merged record is written in full, last write wins.
func (s *TaskService) Update(ctx context.Context, id int, p UpdateParams) (*models.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if err := s.tasks.Update(ctx, id, t.Title, t.Description); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	return s.tasks.Delete(ctx, id)
}
