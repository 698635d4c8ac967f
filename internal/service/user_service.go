package service

import (
	"context"
	"errors"

	"task-manager-api/internal/domain"
)

const (
	MsgUserNotFound  = "User not found"
	MsgEmailConflict = "A user with this email already exists"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	u, err := s.users.Create(ctx, in)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return nil, domain.Conflict(MsgEmailConflict)
	}
	return u, err
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound(MsgUserNotFound)
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id uint64, in domain.UserInput) (*domain.User, error) {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound(MsgUserNotFound)
	}
	u, err := s.users.Update(ctx, id, in)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return nil, domain.Conflict(MsgEmailConflict)
	case err != nil:
		return nil, err
	case u == nil:
		// deleted between the probe and the write
		return nil, domain.NotFound(MsgUserNotFound)
	}
	return u, nil
}

// Delete removes the user only. Tasks that referenced it stay in storage.
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(MsgUserNotFound)
	}
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound(MsgUserNotFound)
	}
	return nil
}
