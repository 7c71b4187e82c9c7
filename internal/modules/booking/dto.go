package booking

import "smartserve/internal/domain"

type CreateRequest struct {
	ServiceID           int64  `json:"service_id"`
	ProfessionalID      *int64 `json:"professional_id"`
	BookingDate         string `json:"booking_date"`
	BookingTime         string `json:"booking_time"`
	Address             string `json:"address"`
	SpecialInstructions string `json:"special_instructions"`
}

// CreateResponse echoes the created booking with its price breakdown.
type CreateResponse struct {
	ID             int64   `json:"id"`
	Reference      string  `json:"reference"`
	ServiceID      int64   `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	ProfessionalID *int64  `json:"professional_id,omitempty"`
	BookingDate    string  `json:"booking_date"`
	BookingTime    string  `json:"booking_time"`
	Address        string  `json:"address,omitempty"`
	ServiceFee     float64 `json:"service_fee"`
	ConvenienceFee float64 `json:"convenience_fee"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
}

func newCreateResponse(b *domain.Booking, svc *domain.Service) *CreateResponse {
	return &CreateResponse{
		ID:             b.ID,
		Reference:      b.Reference,
		ServiceID:      b.ServiceID,
		ServiceName:    svc.Name,
		ProfessionalID: b.ProfessionalID,
		BookingDate:    b.BookingDate,
		BookingTime:    b.BookingTime,
		Address:        b.Address,
		ServiceFee:     svc.Price,
		ConvenienceFee: domain.ConvenienceFee,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
	}
}
