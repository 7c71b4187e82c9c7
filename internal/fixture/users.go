package fixture

import (
	"context"
	"sort"
	"strings"
	"time"

	"smartserve/internal/domain"
	"smartserve/internal/repository"
)

// Users is the fixture counterpart of repository.UserRepository.
type Users struct {
	s *Store
}

func (s *Store) Users() *Users { return &Users{s: s} }

func (r *Users) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicate
		}
	}

	u.ID = r.s.nextUserID
	r.s.nextUserID++
	u.IsActive = true
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Users) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u := r.s.userByID(id); u != nil {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *Users) UpdateProfile(_ context.Context, id int64, name, phone, address string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u := r.s.userByID(id)
	if u == nil {
		return repository.ErrNotFound
	}
	u.Name = name
	u.Phone = phone
	u.Address = address
	u.UpdatedAt = time.Now()
	return nil
}

func (r *Users) List(_ context.Context, active *bool, limit, offset int) ([]domain.UserAccount, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.UserAccount{}
	for _, u := range r.s.users {
		if active != nil && u.IsActive != *active {
			continue
		}
		acct := domain.UserAccount{User: u}
		for _, b := range r.s.bookings {
			if b.UserID != u.ID {
				continue
			}
			acct.TotalBookings++
			if b.Status == domain.BookingCompleted {
				acct.CompletedBookings++
			}
		}
		rows = append(rows, acct)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })

	total := int64(len(rows))
	return paginate(rows, limit, offset), total, nil
}

func (r *Users) ToggleActive(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u := r.s.userByID(id)
	if u == nil {
		return repository.ErrNotFound
	}
	u.IsActive = !u.IsActive
	u.UpdatedAt = time.Now()
	return nil
}

// Admins is the fixture counterpart of repository.AdminRepository.
type Admins struct {
	s *Store
}

func (s *Store) Admins() *Admins { return &Admins{s: s} }

func (r *Admins) GetByLogin(_ context.Context, login string) (*domain.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.IsActive && (strings.EqualFold(a.Username, login) || strings.EqualFold(a.Email, login)) {
			copied := a
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Admins) GetByID(_ context.Context, id int64) (*domain.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.ID == id {
			copied := a
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Admins) TouchLastLogin(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.admins {
		if r.s.admins[i].ID == id {
			now := time.Now()
			r.s.admins[i].LastLogin = &now
			return nil
		}
	}
	return repository.ErrNotFound
}
