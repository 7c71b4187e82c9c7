package fixture

import (
	"context"
	"sort"
	"time"

	"smartserve/internal/domain"
	"smartserve/internal/repository"
)

// Bookings is the fixture counterpart of repository.BookingRepository. The
// store mutex gives the same exactly-once guarantee for conditional updates
// that the SQL layer gets from its predicated UPDATE.
type Bookings struct {
	s *Store
}

func (s *Store) Bookings() *Bookings { return &Bookings{s: s} }

func (r *Bookings) Create(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = r.s.nextBookingID
	r.s.nextBookingID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.s.bookings = append(r.s.bookings, *b)
	return nil
}

func (r *Bookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if b := r.s.bookingByID(id); b != nil {
		copied := *b
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *Bookings) ListByUser(_ context.Context, userID int64, status string, limit, offset int) ([]domain.UserBooking, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.UserBooking{}
	for _, b := range r.s.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && string(b.Status) != status {
			continue
		}
		row := domain.UserBooking{Booking: b}
		if svc := r.s.serviceByID(b.ServiceID); svc != nil {
			row.ServiceName = svc.Name
			row.ServiceIcon = svc.Icon
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BookingDate != rows[j].BookingDate {
			return rows[i].BookingDate > rows[j].BookingDate
		}
		return rows[i].BookingTime > rows[j].BookingTime
	})

	total := int64(len(rows))
	return paginate(rows, limit, offset), total, nil
}

func (r *Bookings) GetForUser(_ context.Context, id, userID int64) (*domain.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b := r.s.bookingByID(id)
	if b == nil || b.UserID != userID {
		return nil, repository.ErrNotFound
	}

	row := domain.BookingDetail{Booking: *b}
	if svc := r.s.serviceByID(b.ServiceID); svc != nil {
		row.ServiceName = svc.Name
		row.ServiceDescription = svc.Description
		row.ServicePrice = svc.Price
		row.ServiceIcon = svc.Icon
	}
	if b.ProfessionalID != nil {
		if p := r.s.professionalByID(*b.ProfessionalID); p != nil {
			row.ProfessionalName = &p.Name
			rating := p.Rating
			row.ProfessionalRating = &rating
		}
	}
	return &row, nil
}

func (r *Bookings) CancelByUser(_ context.Context, id, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b := r.s.bookingByID(id)
	if b == nil || b.UserID != userID {
		return repository.ErrNotFound
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return repository.ErrNotFound
	}
	b.Status = domain.BookingCancelled
	b.UpdatedAt = time.Now()
	return nil
}

func (r *Bookings) AdminList(_ context.Context, f repository.AdminBookingFilter) ([]domain.AdminBooking, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.AdminBooking{}
	for _, b := range r.s.bookings {
		if f.Status != "" && string(b.Status) != f.Status {
			continue
		}
		if f.DateFrom != "" && b.BookingDate < f.DateFrom {
			continue
		}
		if f.DateTo != "" && b.BookingDate > f.DateTo {
			continue
		}
		row := domain.AdminBooking{Booking: b}
		if svc := r.s.serviceByID(b.ServiceID); svc != nil {
			row.ServiceName = svc.Name
			row.ServiceIcon = svc.Icon
		}
		if u := r.s.userByID(b.UserID); u != nil {
			row.CustomerName = u.Name
			row.CustomerEmail = u.Email
			row.CustomerPhone = u.Phone
		}
		if b.ProfessionalID != nil {
			if p := r.s.professionalByID(*b.ProfessionalID); p != nil {
				row.ProfessionalName = &p.Name
				row.ProfessionalEmail = &p.Email
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })

	total := int64(len(rows))
	return paginate(rows, f.Limit, f.Offset), total, nil
}

func (r *Bookings) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, note string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b := r.s.bookingByID(id)
	if b == nil {
		return repository.ErrNotFound
	}
	b.Status = status
	if note != "" {
		b.AdminNotes += "\n[Admin]: " + note
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (r *Bookings) AssignProfessional(_ context.Context, id, professionalID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b := r.s.bookingByID(id)
	if b == nil || b.Status != domain.BookingPending {
		return repository.ErrNotFound
	}
	now := time.Now()
	b.ProfessionalID = &professionalID
	b.Status = domain.BookingConfirmed
	b.AssignedAt = &now
	b.UpdatedAt = now
	return nil
}

func (r *Bookings) BookedProfessionalIDs(_ context.Context, date, timeOfDay string) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[int64]bool{}
	ids := []int64{}
	for _, b := range r.s.bookings {
		if b.ProfessionalID == nil || b.BookingDate != date || b.BookingTime != timeOfDay {
			continue
		}
		if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
			continue
		}
		if !seen[*b.ProfessionalID] {
			seen[*b.ProfessionalID] = true
			ids = append(ids, *b.ProfessionalID)
		}
	}
	return ids, nil
}

func (r *Bookings) CountByUser(_ context.Context, userID int64) (total, completed int64, err error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if b.UserID != userID {
			continue
		}
		total++
		if b.Status == domain.BookingCompleted {
			completed++
		}
	}
	return total, completed, nil
}
