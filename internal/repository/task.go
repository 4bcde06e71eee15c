package repository

import (
	"context"

	"task-manager-pro/internal/domain"
)

// TaskRepository exposes store operations for Task records.
//
// Methods taking an owner treat the empty string as "unscoped": List returns
// every task, and SetCompleted/Delete match on id alone. A non-empty owner
// restricts every operation to tasks with exactly that owner.
type TaskRepository interface {
	// Create assigns the next task id, applies creation timestamps and
	// appends the task to the store. Ids are strictly increasing and are
	// never reused, even after deletes.
	Create(ctx context.Context, task *domain.Task) (int64, error)
	// List returns tasks in insertion order.
	List(ctx context.Context, owner string) ([]domain.Task, error)
	// SetCompleted updates the completed flag of the matching task and
	// returns the updated record. A nil completed leaves the task untouched
	// and returns it as stored. Fails with ErrTaskNotFound when no task
	// matches the id/owner scope.
	SetCompleted(ctx context.Context, id int64, owner string, completed *bool) (*domain.Task, error)
	// Delete removes the matching task. Deleting a task that does not exist
	// (or is outside the owner scope) is not an error.
	Delete(ctx context.Context, id int64, owner string) error
}
