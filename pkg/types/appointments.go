package types

// AppointmentType values accepted by the booking endpoint
const (
	AppointmentTypeVideo    = "video"
	AppointmentTypePhone    = "phone"
	AppointmentTypeInPerson = "in-person"
)

// TherapistListItem is one row of GET /therapists
type TherapistListItem struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	PhotoURL      string   `json:"photoUrl"`
	Specialties   []string `json:"specialties"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Distance      float64  `json:"distance"`
	NextAvailable string   `json:"nextAvailable"`
}

// Therapist is the detail record of GET /therapists/{id}
type Therapist struct {
	ID                      int      `json:"id"`
	FirstName               string   `json:"first_name"`
	LastName                string   `json:"last_name"`
	CompanyEmail            string   `json:"company_email"`
	ProfileImage            string   `json:"profile_image"`
	Bio                     string   `json:"bio"`
	ExperienceYears         int      `json:"experience_years"`
	Specialties             []string `json:"specialties"`
	Education               []string `json:"education"`
	Languages               []string `json:"languages"`
	Address                 string   `json:"address"`
	Rating                  float64  `json:"rating"`
	ReviewCount             int      `json:"review_count"`
	IsAcceptingNewPatients  bool     `json:"is_accepting_new_patients"`
	AverageSessionLength    int      `json:"average_session_length"`
	Name                    string   `json:"name"`
	PhotoURL                string   `json:"photoUrl"`
}

// DisplayName prefers the combined name field, falling back to first/last
func (t *Therapist) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.FirstName + " " + t.LastName
}

// AvailableTimeSlot is one bookable slot of GET /therapists/{id}/availability
type AvailableTimeSlot struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
}

// TherapistRatingRequest is the body of POST /therapists/{id}/rate.
// Ratings use an inclusive 1-5 scale; out-of-range values are a client-side
// validation error.
type TherapistRatingRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// AppointmentRequest is the body of POST /api/book-appointment
type AppointmentRequest struct {
	TherapistID       int     `json:"therapist_id" validate:"required,min=1"`
	Date              string  `json:"date" validate:"required"`
	Time              string  `json:"time" validate:"required"`
	Type              string  `json:"type" validate:"required,oneof=video phone in-person"`
	Notes             *string `json:"notes,omitempty"`
	InsuranceProvider *string `json:"insuranceProvider,omitempty"`
	InsuranceMemberID *string `json:"insuranceMemberId,omitempty"`
}

// AppointmentResponse is the booking result envelope
type AppointmentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Appointment is the stored appointment record; status transitions are
// owned by the remote system
type Appointment struct {
	AppointmentID   int    `json:"appointment_id"`
	PatientID       int    `json:"patient_id"`
	TherapistID     int    `json:"therapist_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Duration        int    `json:"duration"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	AppointmentType string `json:"appointmentType"`
	AdditionalNotes string `json:"additionalNotes"`
	Insurance       string `json:"insurance"`
	MemberID        int    `json:"memberId"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
