package auth

import (
	"context"
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartserve/internal/domain"
	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/repository"
	"smartserve/internal/session"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

type Service struct {
	users    UserRepository
	bookings BookingCounter
	jwt      *jwtsvc.Service
	sessions session.Store
}

func NewService(users UserRepository, bookings BookingCounter, jwt *jwtsvc.Service, sessions session.Store) *Service {
	return &Service{
		users:    users,
		bookings: bookings,
		jwt:      jwt,
		sessions: sessions,
	}
}

// Register creates the account and opens a session, mirroring login.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", ErrValidation
	}
	if !emailRe.MatchString(req.Email) {
		return nil, "", ErrValidation
	}
	if len(req.Password) < minPasswordLen {
		return nil, "", ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailExists
		}
		return nil, "", err
	}

	token, err := s.openSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", ErrValidation
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the session behind the given token ID.
func (s *Service) Logout(ctx context.Context, jti string) error {
	return s.sessions.Delete(ctx, jti)
}

func (s *Service) Profile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	total, completed, err := s.bookings.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		Email:             u.Email,
		Name:              u.Name,
		Phone:             u.Phone,
		Address:           u.Address,
		JoinedDate:        u.CreatedAt.Format(time.RFC3339),
		TotalBookings:     total,
		CompletedBookings: completed,
	}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error {
	if err := s.users.UpdateProfile(ctx, userID, req.Name, req.Phone, req.Address); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) openSession(ctx context.Context, u *domain.User) (string, error) {
	token, jti, err := s.jwt.GenerateToken(u.ID, jwtsvc.ScopeUser)
	if err != nil {
		return "", err
	}
	err = s.sessions.Put(ctx, jti, session.Session{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}, s.jwt.TTL())
	if err != nil {
		return "", err
	}
	return token, nil
}
