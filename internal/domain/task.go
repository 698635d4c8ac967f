package domain

import (
	"context"
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists the accepted statuses in display order.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusList renders the accepted statuses as "pending, in_progress, completed".
func StatusList() string {
	names := make([]string, len(TaskStatuses))
	for i, s := range TaskStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Task is the flat row shape returned by create and update.
type Task struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	Deadline    *Date      `json:"deadline"`
	UserID      uint64     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskOwner is the owner snapshot joined into read results.
type TaskOwner struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskWithUser is the joined read shape.
type TaskWithUser struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	Deadline    *Date      `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        TaskOwner  `json:"user"`
}

// TaskInput is a validated creation payload. An empty Status means pending.
type TaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Deadline    *Date
	UserID      uint64
}

// TaskPatch carries only the fields a client supplied on update.
// Description and Deadline may be present with a nil value, which clears the column.
type TaskPatch struct {
	Title       Opt[string]
	Description Opt[*string]
	Status      Opt[TaskStatus]
	Deadline    Opt[*Date]
}

func (p TaskPatch) Empty() bool {
	return !p.Title.Present && !p.Description.Present && !p.Status.Present && !p.Deadline.Present
}

// TaskFilter holds equality predicates; zero values are not applied.
type TaskFilter struct {
	Status   TaskStatus
	Deadline *Date
	UserID   uint64
}

// Page is a LIMIT/OFFSET window. Offset is ignored unless Limit is set.
type Page struct {
	Limit  int
	Offset int
}

// ListQuery is the normalized query string of the task listing endpoints.
type ListQuery struct {
	Filter TaskFilter
	Page   int
	Limit  int
}

func (q ListQuery) Window() Page {
	return Page{Limit: q.Limit, Offset: (q.Page - 1) * q.Limit}
}

type TaskRepository interface {
	Create(ctx context.Context, in TaskInput) (*Task, error)
	FindByID(ctx context.Context, id uint64) (*TaskWithUser, error)
	FindAll(ctx context.Context, f TaskFilter, p Page) ([]TaskWithUser, error)
	Count(ctx context.Context, f TaskFilter) (int64, error)
	Update(ctx context.Context, id uint64, p TaskPatch) (*Task, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	Exists(ctx context.Context, id uint64) (bool, error)
}
