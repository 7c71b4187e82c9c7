package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"smartserve/internal/domain"
	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/repository"
	"smartserve/internal/session"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByLogin(ctx context.Context, login string) (*domain.Admin, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) TouchLastLogin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Collect(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) AdminList(ctx context.Context, f repository.AdminBookingFilter) ([]domain.AdminBooking, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AdminBooking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, note string) error {
	args := m.Called(ctx, id, status, note)
	return args.Error(0)
}

func (m *MockBookingRepository) AssignProfessional(ctx context.Context, id, professionalID int64) error {
	args := m.Called(ctx, id, professionalID)
	return args.Error(0)
}

type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) List(ctx context.Context, verified *bool, limit, offset int) ([]domain.ProfessionalListing, int64, error) {
	args := m.Called(ctx, verified, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ProfessionalListing), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfessionalRepository) Verify(ctx context.Context, id int64, approved bool, note string) error {
	args := m.Called(ctx, id, approved, note)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) ListWithStats(ctx context.Context, active *bool, limit, offset int) ([]domain.ServiceStats, error) {
	args := m.Called(ctx, active, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceStats), args.Error(1)
}

func (m *MockServiceRepository) Upsert(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 1
	}
	return args.Error(0)
}

func (m *MockServiceRepository) ToggleActive(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, active *bool, limit, offset int) ([]domain.UserAccount, int64, error) {
	args := m.Called(ctx, active, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.UserAccount), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ToggleActive(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mocks struct {
	admins        *MockAdminRepository
	stats         *MockStatsRepository
	bookings      *MockBookingRepository
	professionals *MockProfessionalRepository
	services      *MockServiceRepository
	users         *MockUserRepository
}

func newTestService() (*Service, *mocks) {
	m := &mocks{
		admins:        new(MockAdminRepository),
		stats:         new(MockStatsRepository),
		bookings:      new(MockBookingRepository),
		professionals: new(MockProfessionalRepository),
		services:      new(MockServiceRepository),
		users:         new(MockUserRepository),
	}
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	svc := NewService(m.admins, m.stats, m.bookings, m.professionals, m.services, m.users, j, session.NewMemoryStore())
	return svc, m
}

func TestAdminLogin(t *testing.T) {
	svc, m := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	m.admins.On("GetByLogin", mock.Anything, "superadmin").Return(&domain.Admin{
		ID: 1, Username: "superadmin", Email: "admin@smartserve.com",
		PasswordHash: string(hash), Role: "superadmin", IsActive: true,
	}, nil)
	m.admins.On("TouchLastLogin", mock.Anything, int64(1)).Return(nil)

	a, token, err := svc.Login(context.Background(), LoginRequest{Username: "superadmin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "superadmin", a.Username)
	m.admins.AssertCalled(t, "TouchLastLogin", mock.Anything, int64(1))
}

func TestAdminLoginBadPassword(t *testing.T) {
	svc, m := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	m.admins.On("GetByLogin", mock.Anything, "superadmin").Return(&domain.Admin{
		ID: 1, Username: "superadmin", PasswordHash: string(hash), IsActive: true,
	}, nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "superadmin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginUnknownAdmin(t *testing.T) {
	svc, m := newTestService()

	m.admins.On("GetByLogin", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateBookingStatus(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, Status: domain.BookingConfirmed,
	}, nil)
	m.bookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingInProgress, "team dispatched").Return(nil)

	err := svc.UpdateBookingStatus(context.Background(), 5, UpdateStatusRequest{
		Status: "in_progress",
		Note:   "team dispatched",
	})
	assert.NoError(t, err)
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	svc, m := newTestService()

	err := svc.UpdateBookingStatus(context.Background(), 5, UpdateStatusRequest{Status: "finished"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	m.bookings.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateBookingStatusEnforcesTransitionGraph(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, Status: domain.BookingCompleted,
	}, nil)

	err := svc.UpdateBookingStatus(context.Background(), 5, UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	m.bookings.AssertNotCalled(t, "UpdateStatus")
}

func TestAssignProfessional(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("AssignProfessional", mock.Anything, int64(5), int64(2)).Return(nil)

	err := svc.AssignProfessional(context.Background(), 5, AssignRequest{ProfessionalID: 2})
	assert.NoError(t, err)
}

func TestAssignProfessionalRequiresID(t *testing.T) {
	svc, m := newTestService()

	err := svc.AssignProfessional(context.Background(), 5, AssignRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	m.bookings.AssertNotCalled(t, "AssignProfessional")
}

func TestAssignProfessionalLosesRace(t *testing.T) {
	svc, m := newTestService()

	m.bookings.On("AssignProfessional", mock.Anything, int64(5), int64(2)).Return(repository.ErrNotFound)

	err := svc.AssignProfessional(context.Background(), 5, AssignRequest{ProfessionalID: 2})
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestVerifyProfessional(t *testing.T) {
	svc, m := newTestService()

	m.professionals.On("Verify", mock.Anything, int64(4), true, "docs checked").Return(nil)

	err := svc.VerifyProfessional(context.Background(), 4, VerifyRequest{Action: "approve", Note: "docs checked"})
	assert.NoError(t, err)
}

func TestVerifyProfessionalRejectsUnknownAction(t *testing.T) {
	svc, m := newTestService()

	err := svc.VerifyProfessional(context.Background(), 4, VerifyRequest{Action: "maybe"})
	assert.ErrorIs(t, err, ErrValidation)
	m.professionals.AssertNotCalled(t, "Verify")
}

func TestSaveServiceValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SaveService(context.Background(), ServiceRequest{Price: 100})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SaveService(context.Background(), ServiceRequest{Name: "Gardening"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveService(t *testing.T) {
	svc, m := newTestService()

	m.services.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Service")).Return(nil)

	saved, err := svc.SaveService(context.Background(), ServiceRequest{Name: "Gardening", Price: 1800})
	require.NoError(t, err)
	assert.True(t, saved.IsActive)
	assert.Equal(t, int64(1), saved.ID)
}

func TestListBookingsRejectsUnknownStatus(t *testing.T) {
	svc, m := newTestService()

	_, _, err := svc.ListBookings(context.Background(), repository.AdminBookingFilter{Status: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	m.bookings.AssertNotCalled(t, "AdminList")
}
