package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"smartserve/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// ListByUser returns a customer's bookings, newest first, with the service
// name and icon joined in.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.UserBooking, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("bookings.user_id = ?", userID)
	if status != "" {
		base = base.Where("bookings.status = ?", status)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var rows []domain.UserBooking
	err := base.
		Select("bookings.*, services.name AS service_name, services.icon AS service_icon").
		Joins("JOIN services ON services.id = bookings.service_id").
		Order("bookings.booking_date DESC, bookings.booking_time DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return rows, total, nil
}

// GetForUser returns one booking with service and professional details,
// scoped to the owning user.
func (r *BookingRepository) GetForUser(ctx context.Context, id, userID int64) (*domain.BookingDetail, error) {
	var row domain.BookingDetail
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select(`bookings.*,
			services.name AS service_name,
			services.description AS service_description,
			services.price AS service_price,
			services.icon AS service_icon,
			professionals.name AS professional_name,
			professionals.rating AS professional_rating`).
		Joins("JOIN services ON services.id = bookings.service_id").
		Joins("LEFT JOIN professionals ON professionals.id = bookings.professional_id").
		Where("bookings.id = ? AND bookings.user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// CancelByUser flips the booking to cancelled, but only while it is still
// pending or confirmed and owned by the caller. ErrNotFound means the row
// was absent or not cancellable.
func (r *BookingRepository) CancelByUser(ctx context.Context, id, userID int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND user_id = ? AND status IN ?", id, userID,
			[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Update("status", domain.BookingCancelled)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdminBookingFilter narrows the moderation listing.
type AdminBookingFilter struct {
	Status   string // empty means no status filter
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

func (r *BookingRepository) AdminList(ctx context.Context, f AdminBookingFilter) ([]domain.AdminBooking, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Booking{})
	if f.Status != "" {
		base = base.Where("bookings.status = ?", f.Status)
	}
	if f.DateFrom != "" {
		base = base.Where("bookings.booking_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		base = base.Where("bookings.booking_date <= ?", f.DateTo)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var rows []domain.AdminBooking
	err := base.
		Select(`bookings.*,
			services.name AS service_name,
			services.icon AS service_icon,
			users.name AS customer_name,
			users.email AS customer_email,
			users.phone AS customer_phone,
			professionals.name AS professional_name,
			professionals.email AS professional_email`).
		Joins("JOIN services ON services.id = bookings.service_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Joins("LEFT JOIN professionals ON professionals.id = bookings.professional_id").
		Order("bookings.created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return rows, total, nil
}

// UpdateStatus writes the new status and appends the moderation note to the
// accumulating admin_notes field.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, note string) error {
	updates := map[string]any{"status": status}
	if note != "" {
		updates["admin_notes"] = gorm.Expr(
			"COALESCE(admin_notes, '') || ?", fmt.Sprintf("\n[Admin]: %s", note),
		)
	}

	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
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

// AssignProfessional confirms a pending booking and attaches the
// professional in one conditional write. With two concurrent assigns the
// `status = pending` predicate lets exactly one succeed; the loser sees
// ErrNotFound.
func (r *BookingRepository) AssignProfessional(ctx context.Context, id, professionalID int64) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, domain.BookingPending).
		Updates(map[string]any{
			"professional_id": professionalID,
			"status":          domain.BookingConfirmed,
			"assigned_at":     now,
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BookedProfessionalIDs lists professionals who already hold a pending or
// confirmed booking at exactly the given date and time.
func (r *BookingRepository) BookedProfessionalIDs(ctx context.Context, date, timeOfDay string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Distinct("professional_id").
		Where("booking_date = ? AND booking_time = ? AND professional_id IS NOT NULL AND status IN ?",
			date, timeOfDay,
			[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Pluck("professional_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// CountByUser returns the total and completed booking counts for a profile.
func (r *BookingRepository) CountByUser(ctx context.Context, userID int64) (total, completed int64, err error) {
	err = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return 0, 0, translate(err)
	}
	err = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("user_id = ? AND status = ?", userID, domain.BookingCompleted).
		Count(&completed).Error
	if err != nil {
		return 0, 0, translate(err)
	}
	return total, completed, nil
}
