package fixture

import (
	"context"
	"sort"
	"time"

	"smartserve/internal/domain"
	"smartserve/internal/repository"
)

// Services is the fixture counterpart of repository.ServiceRepository.
type Services struct {
	s *Store
}

func (s *Store) Services() *Services { return &Services{s: s} }

func (r *Services) ListActive(_ context.Context) ([]domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.Service{}
	for _, svc := range r.s.services {
		if svc.IsActive {
			rows = append(rows, svc)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *Services) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if svc := r.s.serviceByID(id); svc != nil {
		copied := *svc
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *Services) ListWithStats(_ context.Context, active *bool, limit, offset int) ([]domain.ServiceStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.ServiceStats{}
	for _, svc := range r.s.services {
		if active != nil && svc.IsActive != *active {
			continue
		}
		row := domain.ServiceStats{Service: svc}
		for _, p := range r.s.professionals {
			if p.ServiceID == svc.ID && p.IsAvailable {
				row.TotalProfessionals++
			}
		}
		for _, b := range r.s.bookings {
			if b.ServiceID == svc.ID && b.Status == domain.BookingCompleted {
				row.TotalBookings++
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return paginate(rows, limit, offset), nil
}

func (r *Services) Upsert(_ context.Context, svc *domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	for i := range r.s.services {
		if r.s.services[i].Name == svc.Name {
			existing := &r.s.services[i]
			existing.Description = svc.Description
			existing.Price = svc.Price
			existing.DurationMinutes = svc.DurationMinutes
			existing.Icon = svc.Icon
			existing.Category = svc.Category
			existing.IsActive = svc.IsActive
			existing.UpdatedAt = now
			*svc = *existing
			return nil
		}
	}

	svc.ID = r.s.nextServiceID
	r.s.nextServiceID++
	svc.CreatedAt = now
	svc.UpdatedAt = now
	r.s.services = append(r.s.services, *svc)
	return nil
}

func (r *Services) ToggleActive(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc := r.s.serviceByID(id)
	if svc == nil {
		return repository.ErrNotFound
	}
	svc.IsActive = !svc.IsActive
	svc.UpdatedAt = time.Now()
	return nil
}

// Professionals is the fixture counterpart of
// repository.ProfessionalRepository.
type Professionals struct {
	s *Store
}

func (s *Store) Professionals() *Professionals { return &Professionals{s: s} }

func (r *Professionals) listing(p domain.Professional) domain.ProfessionalListing {
	row := domain.ProfessionalListing{Professional: p}
	if svc := r.s.serviceByID(p.ServiceID); svc != nil {
		row.ServiceName = svc.Name
	}
	var sum, n int64
	for _, rev := range r.s.reviews {
		if rev.ProfessionalID == p.ID {
			sum += int64(rev.Rating)
			n++
		}
	}
	if n > 0 {
		avg := float64(sum) / float64(n)
		row.AvgRating = &avg
	}
	for _, b := range r.s.bookings {
		if b.ProfessionalID != nil && *b.ProfessionalID == p.ID && b.Status == domain.BookingCompleted {
			row.CompletedJobs++
		}
	}
	return row
}

func (r *Professionals) ListAvailable(_ context.Context, serviceID *int64, ratingMin *float64) ([]domain.ProfessionalListing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.ProfessionalListing{}
	for _, p := range r.s.professionals {
		if !p.IsAvailable {
			continue
		}
		if serviceID != nil && p.ServiceID != *serviceID {
			continue
		}
		row := r.listing(p)
		if ratingMin != nil && (row.AvgRating == nil || *row.AvgRating < *ratingMin) {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Rating > rows[j].Rating })
	return rows, nil
}

func (r *Professionals) ListForService(_ context.Context, serviceID int64) ([]domain.Professional, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.Professional{}
	for _, p := range r.s.professionals {
		if p.ServiceID == serviceID && p.IsAvailable {
			rows = append(rows, p)
		}
	}
	return rows, nil
}

func (r *Professionals) CountAvailableForService(_ context.Context, serviceID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, p := range r.s.professionals {
		if p.ServiceID == serviceID && p.IsAvailable {
			n++
		}
	}
	return n, nil
}

func (r *Professionals) List(_ context.Context, verified *bool, limit, offset int) ([]domain.ProfessionalListing, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := []domain.ProfessionalListing{}
	for _, p := range r.s.professionals {
		if verified != nil && p.VerifiedByAdmin != *verified {
			continue
		}
		rows = append(rows, r.listing(p))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })

	total := int64(len(rows))
	return paginate(rows, limit, offset), total, nil
}

func (r *Professionals) Verify(_ context.Context, id int64, approved bool, note string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.professionalByID(id)
	if p == nil {
		return repository.ErrNotFound
	}
	p.VerifiedByAdmin = approved
	p.IsAvailable = approved
	if note != "" {
		p.AdminNotes += "\n[Admin]: " + note
	}
	p.UpdatedAt = time.Now()
	return nil
}

// Reviews is the fixture counterpart of repository.ReviewRepository.
type Reviews struct {
	s *Store
}

func (s *Store) Reviews() *Reviews { return &Reviews{s: s} }

func (r *Reviews) AverageForService(_ context.Context, serviceID int64) (*float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sum, n int64
	for _, rev := range r.s.reviews {
		if rev.ServiceID == serviceID {
			sum += int64(rev.Rating)
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(n)
	return &avg, nil
}
