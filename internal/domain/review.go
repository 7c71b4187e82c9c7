package domain

import "time"

// Review is read-side only: ratings are aggregated into service and
// professional listings, there is no write endpoint.
type Review struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	BookingID      int64     `json:"booking_id" gorm:"uniqueIndex;not null"`
	ServiceID      int64     `json:"service_id" gorm:"index;not null"`
	ProfessionalID int64     `json:"professional_id" gorm:"index;not null"`
	Rating         int       `json:"rating" gorm:"not null"`
	Comment        string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
}
