package repository

import (
	"context"
	"strings"

	"officemarket/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByName returns the first user with the given name. Used to resolve the
// designated reviewer account.
func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id ASC").
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
