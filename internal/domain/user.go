package domain

import (
	"context"
	"time"
)

type User struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserInput is a validated create/replace payload. Email is already lowercased.
type UserInput struct {
	Name  string
	Email string
}

type UserRepository interface {
	Create(ctx context.Context, in UserInput) (*User, error)
	FindByID(ctx context.Context, id uint64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uint64, in UserInput) (*User, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	Exists(ctx context.Context, id uint64) (bool, error)
}
