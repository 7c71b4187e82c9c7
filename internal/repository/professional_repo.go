package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smartserve/internal/domain"
)

type ProfessionalRepository struct {
	db *gorm.DB
}

func NewProfessionalRepository(db *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

// ListAvailable returns available professionals with their service name,
// optionally filtered by service and minimum review rating.
func (r *ProfessionalRepository) ListAvailable(ctx context.Context, serviceID *int64, ratingMin *float64) ([]domain.ProfessionalListing, error) {
	q := r.db.WithContext(ctx).Model(&domain.Professional{}).
		Select(`professionals.*, services.name AS service_name,
			(SELECT AVG(rating) FROM reviews WHERE reviews.professional_id = professionals.id) AS avg_rating,
			(SELECT COUNT(*) FROM bookings WHERE bookings.professional_id = professionals.id AND bookings.status = 'completed') AS completed_jobs`).
		Joins("LEFT JOIN services ON services.id = professionals.service_id").
		Where("professionals.is_available = ?", true)

	if serviceID != nil {
		q = q.Where("professionals.service_id = ?", *serviceID)
	}

	var rows []domain.ProfessionalListing
	if err := q.Order("professionals.rating DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	if ratingMin != nil {
		filtered := rows[:0]
		for _, row := range rows {
			if row.AvgRating != nil && *row.AvgRating >= *ratingMin {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return rows, nil
}

// ListForService returns the available professionals attached to one service.
func (r *ProfessionalRepository) ListForService(ctx context.Context, serviceID int64) ([]domain.Professional, error) {
	var pros []domain.Professional
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND is_available = ?", serviceID, true).
		Find(&pros).Error
	if err != nil {
		return nil, translate(err)
	}
	return pros, nil
}

func (r *ProfessionalRepository) CountAvailableForService(ctx context.Context, serviceID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Professional{}).
		Where("service_id = ? AND is_available = ?", serviceID, true).
		Count(&n).Error
	return n, translate(err)
}

// List returns the admin moderation view. verified filters on the
// admin-verification flag; nil means everyone.
func (r *ProfessionalRepository) List(ctx context.Context, verified *bool, limit, offset int) ([]domain.ProfessionalListing, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Professional{})
	if verified != nil {
		base = base.Where("professionals.verified_by_admin = ?", *verified)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var rows []domain.ProfessionalListing
	err := base.Select(`professionals.*, services.name AS service_name,
			(SELECT AVG(rating) FROM reviews WHERE reviews.professional_id = professionals.id) AS avg_rating,
			(SELECT COUNT(*) FROM bookings WHERE bookings.professional_id = professionals.id AND bookings.status = 'completed') AS completed_jobs`).
		Joins("LEFT JOIN services ON services.id = professionals.service_id").
		Order("professionals.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return rows, total, nil
}

// Verify sets the admin-verification and availability flags together and
// appends the moderation note.
func (r *ProfessionalRepository) Verify(ctx context.Context, id int64, approved bool, note string) error {
	updates := map[string]any{
		"verified_by_admin": approved,
		"is_available":      approved,
	}
	if note != "" {
		updates["admin_notes"] = gorm.Expr(
			"COALESCE(admin_notes, '') || ?", fmt.Sprintf("\n[Admin]: %s", note),
		)
	}

	tx := r.db.WithContext(ctx).Model(&domain.Professional{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
