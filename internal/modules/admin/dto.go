package admin

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type AssignRequest struct {
	ProfessionalID int64 `json:"professional_id"`
}

type VerifyRequest struct {
	Action string `json:"action"`
	Note   string `json:"note"`
}

type ServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Icon            string  `json:"icon"`
	Category        string  `json:"category"`
}
