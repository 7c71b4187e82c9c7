package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"smartserve/internal/domain"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByLogin resolves an active admin by username or email.
func (r *AdminRepository) GetByLogin(ctx context.Context, login string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.WithContext(ctx).
		Where("(username = ? OR email = ?) AND is_active = ?", login, login, true).
		First(&a).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var a domain.Admin
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id int64) error {
	now := time.Now()
	return translate(r.db.WithContext(ctx).Model(&domain.Admin{}).
		Where("id = ?", id).
		Update("last_login", now).Error)
}
