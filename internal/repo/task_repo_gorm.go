package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-manager-api/internal/domain"
	"task-manager-api/internal/feature/task"
)

const joinedColumns = "t.id, t.title, t.description, t.status, t.deadline, t.created_at, t.updated_at, " +
	"u.id AS user_id, u.name AS user_name, u.email AS user_email"

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

var _ domain.TaskRepository = (*TaskRepo)(nil)

func (r *TaskRepo) Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	m := task.TaskModel{
		Title:       in.Title,
		Description: in.Description,
		Status:      string(status),
		Deadline:    in.Deadline,
		UserID:      in.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	t := m.ToDomain()
	return &t, nil
}

// joined selects tasks with their owner. Tasks whose owner is gone drop out.
func (r *TaskRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tasks AS t").
		Select(joinedColumns).
		Joins("JOIN users u ON t.user_id = u.id")
}

func (r *TaskRepo) FindByID(ctx context.Context, id uint64) (*domain.TaskWithUser, error) {
	var rows []task.JoinedRow
	if err := r.joined(ctx).Where("t.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	t := rows[0].ToDomain()
	return &t, nil
}

func applyFilter(tx *gorm.DB, f domain.TaskFilter) *gorm.DB {
	if f.Status != "" {
		tx = tx.Where("t.status = ?", string(f.Status))
	}
	if f.Deadline != nil {
		tx = tx.Where("t.deadline = ?", *f.Deadline)
	}
	if f.UserID > 0 {
		tx = tx.Where("t.user_id = ?", f.UserID)
	}
	return tx
}

func (r *TaskRepo) FindAll(ctx context.Context, f domain.TaskFilter, p domain.Page) ([]domain.TaskWithUser, error) {
	tx := applyFilter(r.joined(ctx), f).
		Order("t.created_at DESC").Order("t.id DESC")
	if p.Limit > 0 {
		tx = tx.Limit(p.Limit)
		if p.Offset > 0 {
			tx = tx.Offset(p.Offset)
		}
	}
	var rows []task.JoinedRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.TaskWithUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out, nil
}

// Count is taken over the tasks table alone, so orphaned tasks are included.
func (r *TaskRepo) Count(ctx context.Context, f domain.TaskFilter) (int64, error) {
	var n int64
	err := applyFilter(r.db.WithContext(ctx).Table("tasks AS t"), f).Count(&n).Error
	return n, err
}

func (r *TaskRepo) Update(ctx context.Context, id uint64, p domain.TaskPatch) (*domain.Task, error) {
	if p.Empty() {
		return nil, domain.ErrNoFieldsProvided
	}
	cols := map[string]any{"updated_at": time.Now()}
	if p.Title.Present {
		cols["title"] = p.Title.Value
	}
	if p.Description.Present {
		cols["description"] = p.Description.Value
	}
	if p.Status.Present {
		cols["status"] = string(p.Status.Value)
	}
	if p.Deadline.Present {
		if d := p.Deadline.Value; d != nil {
			cols["deadline"] = *d
		} else {
			cols["deadline"] = nil
		}
	}

	res := r.db.WithContext(ctx).Model(&task.TaskModel{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var m task.TaskModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t := m.ToDomain()
	return &t, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&task.TaskModel{})
	return res.RowsAffected > 0, res.Error
}

func (r *TaskRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&task.TaskModel{}).
		Where("id = ?", id).Limit(1).Count(&n).Error
	return n > 0, err
}
