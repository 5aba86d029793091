package types

// LoginRequest is the body of POST /loginUser
type LoginRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	RememberMe bool   `json:"remember_me"`
}

// RegisterRequest is the body of POST /registerUser
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Status is the envelope most write operations return
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the server accepted the operation
func (s *Status) OK() bool {
	return s.Status == "success" || s.Status == "valid" || s.Status == "ok"
}

// ErrorResponse is the error body convention of the remote system
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// UserInfo is the response of GET /getUserInfo
type UserInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Joined   string `json:"joined"`
}

// PatientProfile is the response of GET /api/user/patient-profile
type PatientProfile struct {
	PatientID   int    `json:"patient_id"`
	TherapistID int    `json:"therapist_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	Diagnosis   string `json:"diagnosis"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	UserID      string `json:"user_id"`
}
