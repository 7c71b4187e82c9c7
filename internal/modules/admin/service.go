package admin

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"smartserve/internal/domain"
	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/repository"
	"smartserve/internal/session"
)

type Service struct {
	admins        AdminRepository
	stats         StatsRepository
	bookings      BookingRepository
	professionals ProfessionalRepository
	services      ServiceRepository
	users         UserRepository
	jwt           *jwtsvc.Service
	sessions      session.Store
}

func NewService(
	admins AdminRepository,
	stats StatsRepository,
	bookings BookingRepository,
	professionals ProfessionalRepository,
	services ServiceRepository,
	users UserRepository,
	jwt *jwtsvc.Service,
	sessions session.Store,
) *Service {
	return &Service{
		admins:        admins,
		stats:         stats,
		bookings:      bookings,
		professionals: professionals,
		services:      services,
		users:         users,
		jwt:           jwt,
		sessions:      sessions,
	}
}

// Login authenticates an active admin by username or email and records the
// login time.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.Admin, string, error) {
	if req.Username == "" || req.Password == "" {
		return nil, "", ErrValidation
	}

	a, err := s.admins.GetByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.admins.TouchLastLogin(ctx, a.ID); err != nil {
		return nil, "", err
	}

	token, jti, err := s.jwt.GenerateToken(a.ID, jwtsvc.ScopeAdmin)
	if err != nil {
		return nil, "", err
	}
	err = s.sessions.Put(ctx, jti, session.Session{
		AdminID:  a.ID,
		Email:    a.Email,
		Username: a.Username,
		FullName: a.FullName,
		Role:     a.Role,
	}, s.jwt.TTL())
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

func (s *Service) Logout(ctx context.Context, jti string) error {
	return s.sessions.Delete(ctx, jti)
}

func (s *Service) Profile(ctx context.Context, adminID int64) (*domain.Admin, error) {
	a, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	return s.stats.Collect(ctx)
}

func (s *Service) ListBookings(ctx context.Context, f repository.AdminBookingFilter) ([]domain.AdminBooking, int64, error) {
	if f.Status != "" && !domain.BookingStatus(f.Status).Valid() {
		return nil, 0, ErrInvalidStatus
	}
	return s.bookings.AdminList(ctx, f)
}

// UpdateBookingStatus moves a booking along the lifecycle. The target must
// be a known status reachable from the booking's current one; completed and
// cancelled are terminal.
func (s *Service) UpdateBookingStatus(ctx context.Context, id int64, req UpdateStatusRequest) error {
	target := domain.BookingStatus(req.Status)
	if !target.Valid() {
		return ErrInvalidStatus
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !b.Status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, target, req.Note); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AssignProfessional confirms a pending booking with the chosen
// professional. The write is conditional on the booking still being pending,
// so with concurrent assigns exactly one caller wins.
func (s *Service) AssignProfessional(ctx context.Context, id int64, req AssignRequest) error {
	if req.ProfessionalID == 0 {
		return ErrValidation
	}
	if err := s.bookings.AssignProfessional(ctx, id, req.ProfessionalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAlreadyAssigned
		}
		return err
	}
	return nil
}

func (s *Service) ListProfessionals(ctx context.Context, verified *bool, limit, offset int) ([]domain.ProfessionalListing, int64, error) {
	return s.professionals.List(ctx, verified, limit, offset)
}

func (s *Service) VerifyProfessional(ctx context.Context, id int64, req VerifyRequest) error {
	if req.Action != "approve" && req.Action != "reject" {
		return ErrValidation
	}
	if err := s.professionals.Verify(ctx, id, req.Action == "approve", req.Note); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListServices(ctx context.Context, active *bool, limit, offset int) ([]domain.ServiceStats, error) {
	return s.services.ListWithStats(ctx, active, limit, offset)
}

// SaveService creates the service or updates the one with the same name.
func (s *Service) SaveService(ctx context.Context, req ServiceRequest) (*domain.Service, error) {
	if req.Name == "" || req.Price <= 0 {
		return nil, ErrValidation
	}
	svc := &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Icon:            req.Icon,
		Category:        req.Category,
		IsActive:        true,
	}
	if err := s.services.Upsert(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ToggleService(ctx context.Context, id int64) error {
	if err := s.services.ToggleActive(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListUsers(ctx context.Context, active *bool, limit, offset int) ([]domain.UserAccount, int64, error) {
	return s.users.List(ctx, active, limit, offset)
}

func (s *Service) ToggleUser(ctx context.Context, id int64) error {
	if err := s.users.ToggleActive(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
