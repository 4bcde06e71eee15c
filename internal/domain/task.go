package domain

import "time"

// DefaultPriority is applied when a task is created without one. Priorities
// are free-form labels; the store does not validate them.
const DefaultPriority = "medium"

// Task represents a single tracked task, optionally owned by a user.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	Tags        []string
	Completed   bool
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
