package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"smartserve/internal/domain"
	"smartserve/internal/repository"
)

type Service struct {
	services      ServiceRepository
	professionals ProfessionalRepository
	reviews       ReviewRepository
	conflicts     BookingConflicts
}

func NewService(
	services ServiceRepository,
	professionals ProfessionalRepository,
	reviews ReviewRepository,
	conflicts BookingConflicts,
) *Service {
	return &Service{
		services:      services,
		professionals: professionals,
		reviews:       reviews,
		conflicts:     conflicts,
	}
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

// GetService returns the catalog detail view: the service, its read-side
// aggregates, and the available professionals attached to it.
func (s *Service) GetService(ctx context.Context, id int64) (*domain.ServiceDetail, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &domain.ServiceDetail{Service: *svc, Professionals: []domain.Professional{}}

	if n, err := s.professionals.CountAvailableForService(ctx, id); err == nil {
		detail.AvailableProfessionals = n
	}
	if avg, err := s.reviews.AverageForService(ctx, id); err == nil {
		detail.AvgRating = avg
	}
	if pros, err := s.professionals.ListForService(ctx, id); err == nil {
		detail.Professionals = pros
	}
	return detail, nil
}

func (s *Service) ListProfessionals(ctx context.Context, serviceID *int64, ratingMin *float64) ([]domain.ProfessionalListing, error) {
	return s.professionals.ListAvailable(ctx, serviceID, ratingMin)
}

// AvailableProfessionals returns the available professionals for a service.
// When date and time are both given, professionals holding a pending or
// confirmed booking at that exact slot are excluded. A failing conflict
// lookup degrades to the unfiltered set instead of erroring.
func (s *Service) AvailableProfessionals(ctx context.Context, serviceID int64, date, timeOfDay string) ([]domain.ProfessionalListing, error) {
	pros, err := s.professionals.ListAvailable(ctx, &serviceID, nil)
	if err != nil {
		return nil, err
	}

	if date == "" || timeOfDay == "" {
		return pros, nil
	}

	bookedIDs, err := s.conflicts.BookedProfessionalIDs(ctx, domain.NormalizeDate(date), timeOfDay)
	if err != nil {
		log.Warn().Err(err).Msg("conflict lookup failed, returning unfiltered professionals")
		return pros, nil
	}

	booked := make(map[int64]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	available := pros[:0]
	for _, p := range pros {
		if !booked[p.ID] {
			available = append(available, p)
		}
	}
	return available, nil
}
