package domain

import "time"

type Professional struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:255;not null"`
	Email           string    `json:"email,omitempty" gorm:"size:255"`
	Phone           string    `json:"phone,omitempty" gorm:"size:32"`
	ServiceID       int64     `json:"service_id" gorm:"index;not null"`
	IsAvailable     bool      `json:"is_available" gorm:"default:true"`
	VerifiedByAdmin bool      `json:"verified_by_admin" gorm:"default:false"`
	Rating          float64   `json:"rating"`
	ExperienceYears int       `json:"experience_years"`
	AdminNotes      string    `json:"admin_notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfessionalListing is a professional joined with the name of the service
// they provide and review-derived aggregates.
type ProfessionalListing struct {
	Professional
	ServiceName   string   `json:"service_name"`
	AvgRating     *float64 `json:"avg_rating,omitempty"`
	CompletedJobs int64    `json:"completed_jobs"`
}
