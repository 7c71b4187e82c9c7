package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smartserve/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&services).Error
	if err != nil {
		return nil, translate(err)
	}
	return services, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// ListWithStats returns services with professional and completed-booking
// counters for the admin catalog view.
func (r *ServiceRepository) ListWithStats(ctx context.Context, active *bool, limit, offset int) ([]domain.ServiceStats, error) {
	q := r.db.WithContext(ctx).Model(&domain.Service{}).
		Select(`services.*,
			(SELECT COUNT(*) FROM professionals WHERE professionals.service_id = services.id AND professionals.is_available = ?) AS total_professionals,
			(SELECT COUNT(*) FROM bookings WHERE bookings.service_id = services.id AND bookings.status = 'completed') AS total_bookings`,
			true)
	if active != nil {
		q = q.Where("services.is_active = ?", *active)
	}

	var rows []domain.ServiceStats
	err := q.Order("services.name").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Upsert creates the service or, when the name already exists, updates the
// mutable fields in place.
func (r *ServiceRepository) Upsert(ctx context.Context, s *domain.Service) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"description", "price", "duration_minutes", "icon", "category", "is_active", "updated_at",
		}),
	}).Create(s).Error
	return translate(err)
}

func (r *ServiceRepository) ToggleActive(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
