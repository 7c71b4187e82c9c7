package auth

import (
	"context"

	"smartserve/internal/domain"
)

// UserRepository is the slice of the user store this module needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, phone, address string) error
}

// BookingCounter supplies the profile's booking counters.
type BookingCounter interface {
	CountByUser(ctx context.Context, userID int64) (total, completed int64, err error)
}
