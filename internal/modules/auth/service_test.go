package auth

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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, name, phone, address string) error {
	args := m.Called(ctx, id, name, phone, address)
	return args.Error(0)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountByUser(ctx context.Context, userID int64) (int64, int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func newTestService(users *MockUserRepository, bookings *MockBookingCounter) (*Service, session.Store) {
	store := session.NewMemoryStore()
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	return NewService(users, bookings, j, store), store
}

func TestRegister(t *testing.T) {
	users := new(MockUserRepository)
	svc, _ := newTestService(users, new(MockBookingCounter))

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, token, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
		Name:     "New User",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "new@example.com", u.Email)
	assert.NotEqual(t, "password123", u.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(new(MockUserRepository), new(MockBookingCounter))

	cases := []RegisterRequest{
		{Email: "", Password: "password123"},
		{Email: "a@b.com", Password: ""},
		{Email: "not-an-email", Password: "password123"},
		{Email: "a@b.com", Password: "short"},
	}
	for _, req := range cases {
		_, _, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation, req.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc, _ := newTestService(users, new(MockBookingCounter))

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicate)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin(t *testing.T) {
	users := new(MockUserRepository)
	svc, store := newTestService(users, new(MockBookingCounter))

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{
		ID: 1, Email: "test@example.com", PasswordHash: string(hash), Name: "Test User",
	}, nil)

	u, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), u.ID)

	// login opens a server-side session revocable by logout
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	sess, err := store.Get(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sess.UserID)

	require.NoError(t, svc.Logout(context.Background(), claims.ID))
	_, err = store.Get(context.Background(), claims.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc, _ := newTestService(users, new(MockBookingCounter))

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{
		ID: 1, Email: "test@example.com", PasswordHash: string(hash),
	}, nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc, _ := newTestService(users, new(MockBookingCounter))

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfileIncludesBookingCounts(t *testing.T) {
	users := new(MockUserRepository)
	bookings := new(MockBookingCounter)
	svc, _ := newTestService(users, bookings)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
		ID: 1, Email: "test@example.com", Name: "Test User", CreatedAt: time.Now(),
	}, nil)
	bookings.On("CountByUser", mock.Anything, int64(1)).Return(int64(5), int64(2), nil)

	profile, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), profile.TotalBookings)
	assert.Equal(t, int64(2), profile.CompletedBookings)
}
