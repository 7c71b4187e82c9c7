package domain

import "time"

type Admin struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"size:64;uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password;size:255;not null"`
	FullName     string     `json:"full_name" gorm:"size:255"`
	Role         string     `json:"role" gorm:"size:32;default:admin"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AdminStats is the dashboard counters block.
type AdminStats struct {
	TotalUsers           int64   `json:"total_users"`
	TotalProfessionals   int64   `json:"total_professionals"`
	TotalServices        int64   `json:"total_services"`
	TotalBookings        int64   `json:"total_bookings"`
	PendingBookings      int64   `json:"pending_bookings"`
	TodayBookings        int64   `json:"today_bookings"`
	MonthlyRevenue       float64 `json:"monthly_revenue"`
	PendingVerifications int64   `json:"pending_verifications"`
}
