package catalog

import (
	"context"

	"smartserve/internal/domain"
)

type ServiceRepository interface {
	ListActive(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type ProfessionalRepository interface {
	ListAvailable(ctx context.Context, serviceID *int64, ratingMin *float64) ([]domain.ProfessionalListing, error)
	ListForService(ctx context.Context, serviceID int64) ([]domain.Professional, error)
	CountAvailableForService(ctx context.Context, serviceID int64) (int64, error)
}

type ReviewRepository interface {
	AverageForService(ctx context.Context, serviceID int64) (*float64, error)
}

// BookingConflicts reports which professionals are already taken at an
// exact date and time.
type BookingConflicts interface {
	BookedProfessionalIDs(ctx context.Context, date, timeOfDay string) ([]int64, error)
}
