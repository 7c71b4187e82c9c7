package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"smartserve/internal/domain"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect gathers the dashboard counters. Individual query failures zero
// that counter rather than failing the whole dashboard.
func (r *StatsRepository) Collect(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{}
	db := r.db.WithContext(ctx)

	db.Model(&domain.User{}).Where("is_active = ?", true).Count(&stats.TotalUsers)
	db.Model(&domain.Professional{}).Where("is_available = ?", true).Count(&stats.TotalProfessionals)
	db.Model(&domain.Service{}).Where("is_active = ?", true).Count(&stats.TotalServices)
	db.Model(&domain.Booking{}).Count(&stats.TotalBookings)
	db.Model(&domain.Booking{}).Where("status = ?", domain.BookingPending).Count(&stats.PendingBookings)
	db.Model(&domain.Professional{}).Where("verified_by_admin = ?", false).Count(&stats.PendingVerifications)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	db.Model(&domain.Booking{}).Where("created_at >= ?", startOfDay).Count(&stats.TodayBookings)

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var revenue *float64
	db.Model(&domain.Booking{}).
		Where("status = ? AND created_at >= ?", domain.BookingCompleted, startOfMonth).
		Select("SUM(total_price)").
		Scan(&revenue)
	if revenue != nil {
		stats.MonthlyRevenue = *revenue
	}

	return stats, nil
}
