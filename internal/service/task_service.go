package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"task-manager-api/internal/domain"
)

const (
	MsgTaskNotFound     = "Task not found"
	MsgAssigneeNotFound = "Assigned user not found"
)

type TaskService struct {
	tasks domain.TaskRepository
	users domain.UserRepository
}

func NewTaskService(tasks domain.TaskRepository, users domain.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// Create checks the owner exists first; the write itself is not guarded.
func (s *TaskService) Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound(MsgAssigneeNotFound)
	}
	return s.tasks.Create(ctx, in)
}

func (s *TaskService) List(ctx context.Context, q domain.ListQuery) (*domain.TaskPage, error) {
	return s.page(ctx, q)
}

func (s *TaskService) ListByUser(ctx context.Context, userID uint64, q domain.ListQuery) (*domain.TaskPage, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound(MsgUserNotFound)
	}
	q.Filter.UserID = userID
	return s.page(ctx, q)
}

// page runs the listing and the count concurrently.
func (s *TaskService) page(ctx context.Context, q domain.ListQuery) (*domain.TaskPage, error) {
	var (
		rows  []domain.TaskWithUser
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.tasks.FindAll(gctx, q.Filter, q.Window())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.tasks.Count(gctx, q.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.TaskPage{
		Tasks: rows,
		Meta:  domain.NewPageMeta(q.Page, q.Limit, total),
	}, nil
}

func (s *TaskService) Get(ctx context.Context, id uint64) (*domain.TaskWithUser, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound(MsgTaskNotFound)
	}
	return t, nil
}

// Update writes the patch and returns the task joined with its owner.
// A task whose owner is gone is still updated; the result is then nil.
func (s *TaskService) Update(ctx context.Context, id uint64, p domain.TaskPatch) (*domain.TaskWithUser, error) {
	ok, err := s.tasks.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound(MsgTaskNotFound)
	}
	updated, err := s.tasks.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound(MsgTaskNotFound)
	}
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id uint64) error {
	ok, err := s.tasks.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(MsgTaskNotFound)
	}
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound(MsgTaskNotFound)
	}
	return nil
}
