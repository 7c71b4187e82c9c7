// Package fixture is the in-memory data source used when the relational
// store is unreachable or when DATA_SOURCE=fixture is configured. It
// implements the same repository interfaces as the gorm-backed layer and is
// seeded with a small demo dataset, so the application stays browsable
// without a database.
package fixture

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartserve/internal/domain"
)

type Store struct {
	mu sync.Mutex

	users         []domain.User
	admins        []domain.Admin
	services      []domain.Service
	professionals []domain.Professional
	bookings      []domain.Booking
	reviews       []domain.Review

	nextUserID    int64
	nextBookingID int64
	nextServiceID int64
}

func NewStore() *Store {
	s := &Store{}
	s.seed()
	return s
}

func (s *Store) seed() {
	now := time.Now()
	userHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	s.users = []domain.User{
		{ID: 1, Email: "test@example.com", PasswordHash: string(userHash), Name: "Test User", Phone: "+92 300 1234567", IsActive: true, CreatedAt: now},
	}
	s.admins = []domain.Admin{
		{ID: 1, Username: "superadmin", Email: "admin@smartserve.com", PasswordHash: string(adminHash), FullName: "Super Admin", Role: "superadmin", IsActive: true, CreatedAt: now},
		{ID: 2, Username: "admin", Email: "support@smartserve.com", PasswordHash: string(adminHash), FullName: "Support Admin", Role: "admin", IsActive: true, CreatedAt: now},
	}
	s.services = []domain.Service{
		{ID: 1, Name: "Plumbing", Description: "Expert plumbing services", Price: 2500, DurationMinutes: 120, Icon: "fa-faucet", Category: "home", IsActive: true, CreatedAt: now},
		{ID: 2, Name: "Cleaning", Description: "Professional cleaning services", Price: 2000, DurationMinutes: 180, Icon: "fa-broom", Category: "home", IsActive: true, CreatedAt: now},
		{ID: 3, Name: "Car Wash", Description: "Car washing and detailing", Price: 1500, DurationMinutes: 60, Icon: "fa-car", Category: "auto", IsActive: true, CreatedAt: now},
		{ID: 4, Name: "Electrical", Description: "Certified electrical services", Price: 3000, DurationMinutes: 120, Icon: "fa-bolt", Category: "home", IsActive: true, CreatedAt: now},
		{ID: 5, Name: "HVAC", Description: "Heating and cooling services", Price: 4000, DurationMinutes: 240, Icon: "fa-wind", Category: "home", IsActive: true, CreatedAt: now},
		{ID: 6, Name: "Pest Control", Description: "Pest elimination services", Price: 3500, DurationMinutes: 90, Icon: "fa-bug", Category: "home", IsActive: true, CreatedAt: now},
	}
	s.professionals = []domain.Professional{
		{ID: 1, Name: "Ali Khan", Email: "ali.khan@smartserve.com", ServiceID: 1, IsAvailable: true, VerifiedByAdmin: true, Rating: 4.8, ExperienceYears: 5, CreatedAt: now},
		{ID: 2, Name: "Usman Malik", Email: "usman.malik@smartserve.com", ServiceID: 1, IsAvailable: true, VerifiedByAdmin: true, Rating: 4.6, ExperienceYears: 3, CreatedAt: now},
		{ID: 3, Name: "Sara Ahmed", Email: "sara.ahmed@smartserve.com", ServiceID: 2, IsAvailable: true, VerifiedByAdmin: true, Rating: 4.5, ExperienceYears: 3, CreatedAt: now},
		{ID: 4, Name: "Javed Iqbal", Email: "javed.iqbal@smartserve.com", ServiceID: 4, IsAvailable: true, VerifiedByAdmin: false, Rating: 4.2, ExperienceYears: 7, CreatedAt: now},
	}

	s.nextUserID = 2
	s.nextBookingID = 1
	s.nextServiceID = 7
}

func (s *Store) serviceByID(id int64) *domain.Service {
	for i := range s.services {
		if s.services[i].ID == id {
			return &s.services[i]
		}
	}
	return nil
}

func (s *Store) professionalByID(id int64) *domain.Professional {
	for i := range s.professionals {
		if s.professionals[i].ID == id {
			return &s.professionals[i]
		}
	}
	return nil
}

func (s *Store) userByID(id int64) *domain.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) bookingByID(id int64) *domain.Booking {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i]
		}
	}
	return nil
}

func paginate[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end]
}
