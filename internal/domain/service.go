package domain

import "time"

type Service struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description     string    `json:"description" gorm:"type:text"`
	Price           float64   `json:"price" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes"`
	Icon            string    `json:"icon" gorm:"size:64"`
	Category        string    `json:"category" gorm:"size:64"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ServiceDetail is the catalog detail view with read-side aggregates.
type ServiceDetail struct {
	Service
	AvailableProfessionals int64          `json:"available_professionals"`
	AvgRating              *float64       `json:"avg_rating,omitempty"`
	Professionals          []Professional `json:"professionals"`
}

// ServiceStats is the admin list row with usage counters.
type ServiceStats struct {
	Service
	TotalProfessionals int64 `json:"total_professionals"`
	TotalBookings      int64 `json:"total_bookings"`
}
