package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"smartserve/internal/domain"
	"smartserve/internal/repository"
)

type Service struct {
	bookings BookingRepository
	services ServiceRepository
}

func NewService(bookings BookingRepository, services ServiceRepository) *Service {
	return &Service{bookings: bookings, services: services}
}

// Create books a service for the user. The total is snapshotted as the
// service price plus the convenience fee and never recomputed. The booking
// time falls back from an explicit value to the time component of a
// timestamp-style date to the default slot.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*CreateResponse, error) {
	if req.ServiceID == 0 || req.BookingDate == "" {
		return nil, ErrValidation
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	bookingTime := req.BookingTime
	if bookingTime == "" {
		bookingTime = domain.TimeFromDate(req.BookingDate)
	}
	if bookingTime == "" {
		bookingTime = domain.DefaultBookingTime
	}

	b := &domain.Booking{
		Reference:           uuid.NewString(),
		UserID:              userID,
		ServiceID:           req.ServiceID,
		ProfessionalID:      req.ProfessionalID,
		BookingDate:         domain.NormalizeDate(req.BookingDate),
		BookingTime:         bookingTime,
		Address:             req.Address,
		SpecialInstructions: req.SpecialInstructions,
		TotalPrice:          svc.Price + domain.ConvenienceFee,
		Status:              domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return newCreateResponse(b, svc), nil
}

func (s *Service) List(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.UserBooking, int64, error) {
	if status != "" && !domain.BookingStatus(status).Valid() {
		return nil, 0, ErrValidation
	}
	return s.bookings.ListByUser(ctx, userID, status, limit, offset)
}

func (s *Service) Get(ctx context.Context, id, userID int64) (*domain.BookingDetail, error) {
	b, err := s.bookings.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Cancel flips the booking to cancelled while it is still pending or
// confirmed. Later stages cannot be cancelled by the customer.
func (s *Service) Cancel(ctx context.Context, id, userID int64) error {
	if err := s.bookings.CancelByUser(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotCancellable
		}
		return err
	}
	return nil
}
