package service

import (
	"context"
	"errors"

	"task-manager-pro/internal/domain"
	"task-manager-pro/internal/repository"
)

// ErrTaskNotFound is returned when a task id does not exist or belongs to a
// different owner; the two cases are deliberately not distinguished.
var ErrTaskNotFound = errors.New("task not found")

// CreateTaskInput carries the caller-supplied fields of a new task. Id,
// owner, completion state and timestamps are assigned by the store.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Tags        []string
}

// TaskService coordinates task operations, scoped to an owner when one is
// given. An empty owner means unscoped access to the whole collection.
type TaskService interface {
	CreateTask(ctx context.Context, owner string, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, owner string) ([]domain.Task, error)
	// UpdateCompletion sets the completed flag of a task. A nil completed
	// leaves the task as-is and returns it unchanged; no other field is
	// ever mutated through this path.
	UpdateCompletion(ctx context.Context, id int64, owner string, completed *bool) (*domain.Task, error)
	// DeleteTask removes a task. Deleting an id that does not exist (or is
	// not owned by the caller) succeeds; the operation is idempotent.
	DeleteTask(ctx context.Context, id int64, owner string) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) CreateTask(ctx context.Context, owner string, input CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}
	if input.Priority == "" {
		input.Priority = domain.DefaultPriority
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Tags:        input.Tags,
		Owner:       owner,
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, owner string) ([]domain.Task, error) {
	return s.tasks.List(ctx, owner)
}

func (s *taskService) UpdateCompletion(ctx context.Context, id int64, owner string, completed *bool) (*domain.Task, error) {
	task, err := s.tasks.SetCompleted(ctx, id, owner, completed)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64, owner string) error {
	return s.tasks.Delete(ctx, id, owner)
}
