package admin

import (
	"context"

	"smartserve/internal/domain"
	"smartserve/internal/repository"
)

type AdminRepository interface {
	GetByLogin(ctx context.Context, login string) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

type StatsRepository interface {
	Collect(ctx context.Context) (*domain.AdminStats, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	AdminList(ctx context.Context, f repository.AdminBookingFilter) ([]domain.AdminBooking, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, note string) error
	AssignProfessional(ctx context.Context, id, professionalID int64) error
}

type ProfessionalRepository interface {
	List(ctx context.Context, verified *bool, limit, offset int) ([]domain.ProfessionalListing, int64, error)
	Verify(ctx context.Context, id int64, approved bool, note string) error
}

type ServiceRepository interface {
	ListWithStats(ctx context.Context, active *bool, limit, offset int) ([]domain.ServiceStats, error)
	Upsert(ctx context.Context, s *domain.Service) error
	ToggleActive(ctx context.Context, id int64) error
}

type UserRepository interface {
	List(ctx context.Context, active *bool, limit, offset int) ([]domain.UserAccount, int64, error)
	ToggleActive(ctx context.Context, id int64) error
}
