package task

import (
	"time"

	"task-manager-api/internal/domain"
)

// TaskModel references users by id only. No foreign key constraint is
// declared, so deleting a user leaves its tasks in place.
type TaskModel struct {
	ID          uint64       `gorm:"primaryKey;autoIncrement"`
	Title       string       `gorm:"size:200;not null"`
	Description *string      `gorm:"size:1000"`
	Status      string       `gorm:"size:20;not null;default:pending;index"`
	Deadline    *domain.Date `gorm:"type:date;index"`
	UserID      uint64       `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TaskModel) TableName() string { return "tasks" }

func (m TaskModel) ToDomain() domain.Task {
	return domain.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      domain.TaskStatus(m.Status),
		Deadline:    m.Deadline,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// JoinedRow is the projection of a task joined with its owner.
type JoinedRow struct {
	ID          uint64
	Title       string
	Description *string
	Status      string
	Deadline    *domain.Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint64
	UserName    string
	UserEmail   string
}

func (r JoinedRow) ToDomain() domain.TaskWithUser {
	return domain.TaskWithUser{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.TaskStatus(r.Status),
		Deadline:    r.Deadline,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		User: domain.TaskOwner{
			ID:    r.UserID,
			Name:  r.UserName,
			Email: r.UserEmail,
		},
	}
}
