package repository

import (
	"context"

	"gorm.io/gorm"

	"smartserve/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// AverageForService returns the mean review rating across a service's
// bookings, or nil when the service has no reviews yet.
func (r *ReviewRepository) AverageForService(ctx context.Context, serviceID int64) (*float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("service_id = ?", serviceID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, translate(err)
	}
	return avg, nil
}
