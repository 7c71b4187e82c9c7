package booking

import (
	"context"

	"smartserve/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.UserBooking, int64, error)
	GetForUser(ctx context.Context, id, userID int64) (*domain.BookingDetail, error)
	CancelByUser(ctx context.Context, id, userID int64) error
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
