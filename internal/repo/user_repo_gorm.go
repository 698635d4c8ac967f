package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-manager-api/internal/domain"
	"task-manager-api/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	m := user.UserModel{Name: in.Name, Email: in.Email}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	u := m.ToDomain()
	return &u, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepo) first(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m user.UserModel
	err := r.db.WithContext(ctx).Where(query, arg).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u := m.ToDomain()
	return &u, nil
}

func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []user.UserModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, m.ToDomain())
	}
	return users, nil
}

// Update replaces name and email. A nil user means no row matched.
func (r *UserRepo) Update(ctx context.Context, id uint64, in domain.UserInput) (*domain.User, error) {
	res := r.db.WithContext(ctx).Model(&user.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       in.Name,
			"email":      in.Email,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&user.UserModel{})
	return res.RowsAffected > 0, res.Error
}

func (r *UserRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&user.UserModel{}).
		Where("id = ?", id).Limit(1).Count(&n).Error
	return n > 0, err
}
