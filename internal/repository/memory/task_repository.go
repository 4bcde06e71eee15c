// Package memory provides in-process implementations of the repository
// interfaces. All state lives for the process lifetime; each store serializes
// access with its own RWMutex so that find-then-mutate sequences are atomic.
package memory

import (
	"context"
	"sync"
	"time"

	"task-manager-pro/internal/domain"
	"task-manager-pro/internal/repository"
)

type TaskRepository struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	nextID int64
}

func NewTaskRepository() repository.TaskRepository {
	return &TaskRepository{nextID: 1}
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) (int64, error) {
	now := time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Tags == nil {
		task.Tags = []string{}
	}

	r.tasks = append(r.tasks, cloneTask(*task))
	return task.ID, nil
}

func (r *TaskRepository) List(_ context.Context, owner string) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, 0, len(r.tasks))
	for i := range r.tasks {
		if owner != "" && r.tasks[i].Owner != owner {
			continue
		}
		out = append(out, cloneTask(r.tasks[i]))
	}
	return out, nil
}

func (r *TaskRepository) SetCompleted(_ context.Context, id int64, owner string, completed *bool) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID != id {
			continue
		}
		if owner != "" && r.tasks[i].Owner != owner {
			// Same failure as an unknown id so that callers cannot probe
			// for tasks belonging to other owners.
			return nil, repository.ErrTaskNotFound
		}
		if completed != nil {
			r.tasks[i].Completed = *completed
			r.tasks[i].UpdatedAt = time.Now().UTC()
		}
		task := cloneTask(r.tasks[i])
		return &task, nil
	}
	return nil, repository.ErrTaskNotFound
}

func (r *TaskRepository) Delete(_ context.Context, id int64, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.tasks[:0]
	for i := range r.tasks {
		if r.tasks[i].ID == id && (owner == "" || r.tasks[i].Owner == owner) {
			continue
		}
		kept = append(kept, r.tasks[i])
	}
	r.tasks = kept
	return nil
}

// cloneTask copies a task so stored records are never aliased by callers.
func cloneTask(t domain.Task) domain.Task {
	t.Tags = append([]string{}, t.Tags...)
	return t
}
