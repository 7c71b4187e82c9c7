package auth

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ProfileResponse struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	JoinedDate        string `json:"joinedDate"`
	TotalBookings     int64  `json:"totalBookings"`
	CompletedBookings int64  `json:"completedBookings"`
}
