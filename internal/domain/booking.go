package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// ConvenienceFee is added to the service price of every booking at creation
// time. The snapshot is never recomputed afterwards.
const ConvenienceFee = 200.0

// DefaultBookingTime is used when neither an explicit time nor a
// timestamp-style date is supplied.
const DefaultBookingTime = "09:00"

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether target is reachable from s.
// pending -> confirmed|cancelled; confirmed -> in_progress|completed|cancelled;
// in_progress -> completed|cancelled; completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingPending:
		return target == BookingConfirmed || target == BookingCancelled
	case BookingConfirmed:
		return target == BookingInProgress || target == BookingCompleted || target == BookingCancelled
	case BookingInProgress:
		return target == BookingCompleted || target == BookingCancelled
	}
	return false
}

type Booking struct {
	ID                  int64         `json:"id" gorm:"primaryKey"`
	Reference           string        `json:"reference" gorm:"size:36;uniqueIndex"`
	UserID              int64         `json:"user_id" gorm:"index;not null"`
	ServiceID           int64         `json:"service_id" gorm:"index;not null"`
	ProfessionalID      *int64        `json:"professional_id,omitempty" gorm:"index"`
	BookingDate         string        `json:"booking_date" gorm:"size:10;index;not null"`
	BookingTime         string        `json:"booking_time" gorm:"size:5"`
	Address             string        `json:"address,omitempty" gorm:"type:text"`
	SpecialInstructions string        `json:"special_instructions,omitempty" gorm:"type:text"`
	TotalPrice          float64       `json:"total_price"`
	Status              BookingStatus `json:"status" gorm:"size:20;index;default:pending"`
	AdminNotes          string        `json:"admin_notes,omitempty" gorm:"type:text"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	AssignedAt          *time.Time    `json:"assigned_at,omitempty"`
}

// UserBooking is the row shape for a customer's booking list.
type UserBooking struct {
	Booking
	ServiceName string `json:"service_name"`
	ServiceIcon string `json:"service_icon"`
}

// BookingDetail is a single booking joined with its service and, when
// assigned, professional.
type BookingDetail struct {
	Booking
	ServiceName        string   `json:"service_name"`
	ServiceDescription string   `json:"service_description"`
	ServicePrice       float64  `json:"service_price"`
	ServiceIcon        string   `json:"service_icon"`
	ProfessionalName   *string  `json:"professional_name,omitempty"`
	ProfessionalRating *float64 `json:"professional_rating,omitempty"`
}

// AdminBooking is the moderation-view row: booking plus customer and
// professional contact info.
type AdminBooking struct {
	Booking
	ServiceName       string  `json:"service_name"`
	ServiceIcon       string  `json:"service_icon"`
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	CustomerPhone     string  `json:"customer_phone"`
	ProfessionalName  *string `json:"professional_name,omitempty"`
	ProfessionalEmail *string `json:"professional_email,omitempty"`
}
