package fixture

import (
	"context"
	"time"

	"smartserve/internal/domain"
)

// Stats is the fixture counterpart of repository.StatsRepository.
type Stats struct {
	s *Store
}

func (s *Store) Stats() *Stats { return &Stats{s: s} }

func (r *Stats) Collect(_ context.Context) (*domain.AdminStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := &domain.AdminStats{}
	for _, u := range r.s.users {
		if u.IsActive {
			stats.TotalUsers++
		}
	}
	for _, p := range r.s.professionals {
		if p.IsAvailable {
			stats.TotalProfessionals++
		}
		if !p.VerifiedByAdmin {
			stats.PendingVerifications++
		}
	}
	for _, svc := range r.s.services {
		if svc.IsActive {
			stats.TotalServices++
		}
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, b := range r.s.bookings {
		stats.TotalBookings++
		if b.Status == domain.BookingPending {
			stats.PendingBookings++
		}
		if !b.CreatedAt.Before(startOfDay) {
			stats.TodayBookings++
		}
		if b.Status == domain.BookingCompleted && !b.CreatedAt.Before(startOfMonth) {
			stats.MonthlyRevenue += b.TotalPrice
		}
	}
	return stats, nil
}
