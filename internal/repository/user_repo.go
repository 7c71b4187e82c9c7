package repository

import (
	"context"

	"gorm.io/gorm"

	"smartserve/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.IsActive = true
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, name, phone, address string) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"name":    name,
		"phone":   phone,
		"address": address,
	})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns users with their booking counters for the admin view.
func (r *UserRepository) List(ctx context.Context, active *bool, limit, offset int) ([]domain.UserAccount, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.User{})
	if active != nil {
		base = base.Where("is_active = ?", *active)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var rows []domain.UserAccount
	err := base.Select(`users.*,
		(SELECT COUNT(*) FROM bookings WHERE bookings.user_id = users.id) AS total_bookings,
		(SELECT COUNT(*) FROM bookings WHERE bookings.user_id = users.id AND bookings.status = 'completed') AS completed_bookings`).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return rows, total, nil
}

func (r *UserRepository) ToggleActive(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
