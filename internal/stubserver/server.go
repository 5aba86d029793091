// Package stubserver is an in-memory stand-in for the remote APR-CV
// backend. It implements the endpoint surface the client consumes against
// seeded fixtures, issuing the same session_id cookie and error envelopes
// as the production server, and doubles as the test backend.
package stubserver

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/RandomSci/CapstoneProject/internal/session"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// Server serves the stub API. All state lives behind one mutex; handlers
// mutate the fixtures so write operations round-trip the way the real
// backend does.
type Server struct {
	router *mux.Router
	log    *logger.Logger

	mu                 sync.Mutex
	accounts           map[string]account
	sessions           map[string]string // session token -> username
	plans              []types.TreatmentPlan
	therapists         []types.Therapist
	matchedTherapistID int
	appointments       []types.Appointment
	messages           []types.ChatMessage
	submissions        []types.VideoSubmissionDetails
	nextID             int
}

type account struct {
	Password string
	Email    string
	Joined   string
}

// New builds a stub server with seeded fixtures
func New(log *logger.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		log:    log,
		nextID: 1000,
	}
	s.seed()
	s.setupRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.Use(s.loggingMiddleware)

	// Public surface
	s.router.HandleFunc("/", s.handleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/loginUser", s.handleLogin).Methods(http.MethodPost)
	s.router.HandleFunc("/registerUser", s.handleRegister).Methods(http.MethodPost)
	s.router.HandleFunc("/reset-password", s.handleResetPassword).Methods(http.MethodPost)
	s.router.HandleFunc("/therapists", s.handleTherapists).Methods(http.MethodGet)
	s.router.HandleFunc("/therapists/{id:[0-9]+}", s.handleTherapistDetails).Methods(http.MethodGet)
	s.router.HandleFunc("/therapists/{id:[0-9]+}/availability", s.handleAvailability).Methods(http.MethodGet)

	// Everything below requires the session cookie
	auth := s.router.NewRoute().Subrouter()
	auth.Use(s.requireSession)
	auth.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	auth.HandleFunc("/getUserInfo", s.handleUserInfo).Methods(http.MethodGet)
	auth.HandleFunc("/api/user/patient-profile", s.handlePatientProfile).Methods(http.MethodGet)
	auth.HandleFunc("/api/user/treatment-plans", s.handleTreatmentPlans).Methods(http.MethodGet)
	auth.HandleFunc("/api/user/exercises/progress", s.handleUserProgress).Methods(http.MethodGet)
	auth.HandleFunc("/api/user/exercise-analytics", s.handleAnalytics).Methods(http.MethodGet)
	auth.HandleFunc("/api/exercises/{id:[0-9]+}", s.handleExerciseDetails).Methods(http.MethodGet)
	auth.HandleFunc("/api/exercises/{id:[0-9]+}/progress", s.handleAddProgress).Methods(http.MethodPost)
	auth.HandleFunc("/api/exercises/{id:[0-9]+}/update-status", s.handleUpdateStatus).Methods(http.MethodPost)
	auth.HandleFunc("/api/exercises/{id:[0-9]+}/history", s.handleExerciseHistory).Methods(http.MethodGet)
	auth.HandleFunc("/api/exercises/video-submission", s.handleUploadVideo).Methods(http.MethodPost)
	auth.HandleFunc("/api/treatment-plans/{id:[0-9]+}/progress", s.handlePlanProgress).Methods(http.MethodGet)
	auth.HandleFunc("/therapists/{id:[0-9]+}/add_patient", s.handleAddPatient).Methods(http.MethodPost)
	auth.HandleFunc("/therapists/{id:[0-9]+}/rate", s.handleRateTherapist).Methods(http.MethodPost)
	auth.HandleFunc("/api/user/therapist", s.handleUserTherapist).Methods(http.MethodGet)
	auth.HandleFunc("/api/book-appointment", s.handleBookAppointment).Methods(http.MethodPost)
	auth.HandleFunc("/api/user/appointments", s.handleUserAppointments).Methods(http.MethodGet)
	auth.HandleFunc("/api/user/appointments/next", s.handleNextAppointment).Methods(http.MethodGet)
	auth.HandleFunc("/api/appointments/{id:[0-9]+}", s.handleAppointmentDetails).Methods(http.MethodGet)
	auth.HandleFunc("/api/patients/{id:[0-9]+}/appointments", s.handlePatientAppointments).Methods(http.MethodGet)
	auth.HandleFunc("/messages/send-to-therapist", s.handleSendMessage).Methods(http.MethodPost)
	auth.HandleFunc("/messages/therapist/{id:[0-9]+}", s.handleTherapistMessages).Methods(http.MethodGet)
	auth.HandleFunc("/messages/{id:[0-9]+}/read", s.handleMarkRead).Methods(http.MethodPost)
	auth.HandleFunc("/api/user/video-submissions", s.handleUserSubmissions).Methods(http.MethodGet)
	auth.HandleFunc("/api/video-submissions/{id:[0-9]+}", s.handleSubmissionDetails).Methods(http.MethodGet)
	auth.HandleFunc("/api/video-submissions/{id:[0-9]+}", s.handleDeleteSubmission).Methods(http.MethodDelete)
}

// loggingMiddleware logs every request with its method and path
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithComponent("stubserver").WithFields(map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("Handled request")
	})
}

// requireSession rejects requests whose session_id cookie is missing or
// unknown, mirroring the backend's 401 detail envelope
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			s.writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		s.mu.Lock()
		_, known := s.sessions[cookie.Value]
		s.mu.Unlock()
		if !known {
			s.writeError(w, http.StatusUnauthorized, "Session expired")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.Status{Status: "ok", Message: "APR-CV stub"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	acct, ok := s.accounts[req.Username]
	if !ok || acct.Password != req.Password {
		s.mu.Unlock()
		s.writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	token := uuid.NewString()
	s.sessions[token] = req.Username
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	s.writeJSON(w, http.StatusOK, types.Status{Status: "valid", Message: "Login successful"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Username]; exists {
		s.writeError(w, http.StatusConflict, "Username already taken")
		return
	}
	s.accounts[req.Username] = account{
		Password: req.Password,
		Email:    req.Email,
		Joined:   time.Now().Format("2006-01-02"),
	}
	s.writeJSON(w, http.StatusOK, types.Status{Status: "valid", Message: "Account created"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:   session.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	s.writeJSON(w, http.StatusOK, types.Status{Status: "success", Message: "Logged out"})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["email"] == "" {
		s.writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	s.writeJSON(w, http.StatusOK, types.Status{Status: "success", Message: "Reset email sent"})
}

func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	username := s.sessionUser(r)
	s.mu.Lock()
	acct := s.accounts[username]
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, types.UserInfo{
		Username: username,
		Email:    acct.Email,
		Joined:   acct.Joined,
	})
}

func (s *Server) handlePatientProfile(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, fixturePatientProfile(s.sessionUser(r)))
}

func (s *Server) handleTreatmentPlans(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]types.TreatmentPlan, len(s.plans))
	copy(out, s.plans)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUserProgress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var total, completed int
	for _, plan := range s.plans {
		for _, ex := range plan.Exercises {
			total++
			if ex.Completed {
				completed++
			}
		}
	}
	s.mu.Unlock()

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}
	s.writeJSON(w, http.StatusOK, types.UserProgress{
		CompletionRate: rate,
		WeeklyStats:    map[string]int{"Mon": 2, "Wed": 1, "Fri": 3},
		DonutData:      map[string]int{"completed": completed, "remaining": total - completed},
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, fixtureAnalytics())
}

func (s *Server) handleExerciseDetails(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	details, ok := s.exerciseDetailsLocked(id)
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, "Exercise not found")
		return
	}
	s.writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleAddProgress(w http.ResponseWriter, r *http.Request) {
	var req types.AddProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.SetsCompleted < 1 {
		s.writeError(w, http.StatusUnprocessableEntity, "sets_completed must be at least 1")
		return
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, types.AddProgressResponse{
		Detail:     "Progress recorded",
		ProgressID: id,
	})
}

// handleUpdateStatus mutates the matching plan exercise so the completed
// flag round-trips on the next plan fetch
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	planExerciseID := pathID(r, "id")
	completed, err := strconv.ParseBool(r.URL.Query().Get("completed"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "completed must be true or false")
		return
	}

	s.mu.Lock()
	found := false
	for pi := range s.plans {
		for ei := range s.plans[pi].Exercises {
			if s.plans[pi].Exercises[ei].PlanExerciseID == planExerciseID {
				s.plans[pi].Exercises[ei].Completed = completed
				found = true
			}
		}
	}
	s.mu.Unlock()

	if !found {
		s.writeError(w, http.StatusNotFound, "Plan exercise not found")
		return
	}
	s.writeJSON(w, http.StatusOK, types.Status{Status: "success"})
}

func (s *Server) handleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	history, ok := s.exerciseHistoryLocked(id)
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, "Exercise not found")
		return
	}
	s.writeJSON(w, http.StatusOK, history)
}

// handleUploadVideo drains the multipart body part by part, recording the
// video byte count without buffering the file
func (s *Server) handleUploadVideo(w http.ResponseWriter, r *http.Request) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		s.writeError(w, http.StatusBadRequest, "Expected multipart/form-data")
		return
	}

	reader := multipart.NewReader(r.Body, params["boundary"])
	fields := map[string]string{}
	var videoBytes int64
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "Malformed multipart body")
			return
		}
		if part.FormName() == "video" {
			n, copyErr := io.Copy(io.Discard, part)
			if copyErr != nil {
				s.writeError(w, http.StatusBadRequest, "Truncated video part")
				return
			}
			videoBytes = n
			continue
		}
		data, _ := io.ReadAll(io.LimitReader(part, 64<<10))
		fields[part.FormName()] = string(data)
	}

	exerciseID, _ := strconv.Atoi(fields["exercise_id"])
	planID, _ := strconv.Atoi(fields["treatment_plan_id"])
	if exerciseID == 0 || planID == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "exercise_id and treatment_plan_id are required")
		return
	}

	notes := fields["notes"]
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.submissions = append(s.submissions, types.VideoSubmissionDetails{
		SubmissionID:    id,
		PatientID:       1,
		ExerciseID:      exerciseID,
		ExerciseName:    s.exerciseNameLocked(exerciseID),
		TreatmentPlanID: planID,
		VideoURL:        fmt.Sprintf("/media/submissions/%d.mp4", id),
		SubmissionDate:  time.Now().Format("2006-01-02T15:04:05"),
		Notes:           &notes,
		Status:          types.SubmissionStatusPending,
	})
	s.mu.Unlock()

	s.log.WithComponent("stubserver").WithFields(map[string]interface{}{
		"submission_id": id,
		"video_bytes":   videoBytes,
	}).Info("Accepted video submission")

	s.writeJSON(w, http.StatusOK, types.UploadVideoResponse{
		SubmissionID: id,
		Status:       "success",
		Message:      "Video uploaded",
	})
}

func (s *Server) handlePlanProgress(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	summary, ok := s.planProgressLocked(id)
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, "Treatment plan not found")
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleTherapists(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]types.TherapistListItem, 0, len(s.therapists))
	for _, t := range s.therapists {
		out = append(out, types.TherapistListItem{
			ID:          t.ID,
			Name:        t.DisplayName(),
			PhotoURL:    t.PhotoURL,
			Specialties: t.Specialties,
			Location:    t.Address,
			Rating:      t.Rating,
			ReviewCount: t.ReviewCount,
		})
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTherapistDetails(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.therapists {
		if t.ID == id {
			s.writeJSON(w, http.StatusOK, t)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Therapist not found")
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}
	slots := []types.AvailableTimeSlot{
		{ID: 1, Date: date, Time: "09:00", IsAvailable: true},
		{ID: 2, Date: date, Time: "10:30", IsAvailable: true},
		{ID: 3, Date: date, Time: "14:00", IsAvailable: false},
	}
	s.writeJSON(w, http.StatusOK, slots)
}

// handleAddPatient records the therapist match so it round-trips through
// GET /api/user/therapist
func (s *Server) handleAddPatient(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.therapists {
		if t.ID == id {
			s.matchedTherapistID = id
			s.writeJSON(w, http.StatusOK, types.Status{Status: "success", Message: "Patient added to therapist"})
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Therapist not found")
}

func (s *Server) handleRateTherapist(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var req types.TherapistRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		s.writeError(w, http.StatusUnprocessableEntity, "rating must be between 1 and 5")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.therapists {
		t := &s.therapists[i]
		if t.ID == id {
			t.Rating = (t.Rating*float64(t.ReviewCount) + float64(req.Rating)) / float64(t.ReviewCount+1)
			t.ReviewCount++
			s.writeJSON(w, http.StatusOK, types.Status{Status: "success", Message: "Rating recorded"})
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Therapist not found")
}

func (s *Server) handleUserTherapist(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.therapists {
		if t.ID == s.matchedTherapistID {
			s.writeJSON(w, http.StatusOK, t)
			return
		}
	}
	if len(s.therapists) == 0 {
		s.writeError(w, http.StatusNotFound, "No assigned therapist")
		return
	}
	s.writeJSON(w, http.StatusOK, s.therapists[0])
}

func (s *Server) handleBookAppointment(w http.ResponseWriter, r *http.Request) {
	var req types.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.TherapistID == 0 || req.Date == "" || req.Time == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "therapist_id, date and time are required")
		return
	}

	s.mu.Lock()
	s.nextID++
	appt := types.Appointment{
		AppointmentID:   s.nextID,
		PatientID:       1,
		TherapistID:     req.TherapistID,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		Duration:        45,
		Status:          "scheduled",
		AppointmentType: req.Type,
		CreatedAt:       time.Now().Format("2006-01-02T15:04:05"),
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, types.AppointmentResponse{
		Status:  "success",
		Message: "Appointment booked",
	})
}

func (s *Server) handleUserAppointments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]types.Appointment, len(s.appointments))
	copy(out, s.appointments)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

// handleNextAppointment returns a zero-id record when nothing is
// scheduled; the client maps that to "no upcoming appointment"
func (s *Server) handleNextAppointment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.appointments) == 0 {
		s.writeJSON(w, http.StatusOK, types.Appointment{})
		return
	}
	s.writeJSON(w, http.StatusOK, s.appointments[0])
}

func (s *Server) handleAppointmentDetails(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.AppointmentID == id {
			s.writeJSON(w, http.StatusOK, a)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Appointment not found")
}

func (s *Server) handlePatientAppointments(w http.ResponseWriter, r *http.Request) {
	patientID := pathID(r, "id")
	s.mu.Lock()
	out := make([]types.Appointment, 0)
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req types.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.Content == "" || req.TherapistID == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "therapist_id and content are required")
		return
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.messages = append(s.messages, types.ChatMessage{
		ID:         id,
		SenderID:   1,
		ReceiverID: req.TherapistID,
		SenderType: types.SenderTypeUser,
		Content:    req.Content,
		Timestamp:  time.Now().Format("2006-01-02T15:04:05"),
	})
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, types.MessageResponse{
		ID:     id,
		Status: "valid",
	})
}

func (s *Server) handleTherapistMessages(w http.ResponseWriter, r *http.Request) {
	therapistID := pathID(r, "id")
	s.mu.Lock()
	out := make([]types.ChatMessage, 0)
	for _, m := range s.messages {
		if m.ReceiverID == therapistID || m.SenderID == therapistID {
			out = append(out, m)
		}
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	messageID := pathID(r, "id")
	s.mu.Lock()
	found := false
	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages[i].IsRead = true
			found = true
		}
	}
	s.mu.Unlock()
	if !found {
		s.writeError(w, http.StatusNotFound, "Message not found")
		return
	}
	s.writeJSON(w, http.StatusOK, types.Status{Status: "success"})
}

func (s *Server) handleUserSubmissions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]types.VideoSubmission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		out = append(out, types.VideoSubmission{
			SubmissionID:    sub.SubmissionID,
			ExerciseID:      sub.ExerciseID,
			ExerciseName:    sub.ExerciseName,
			TreatmentPlanID: sub.TreatmentPlanID,
			VideoURL:        sub.VideoURL,
			SubmissionDate:  sub.SubmissionDate,
			Status:          sub.Status,
			HasFeedback:     types.FlexBool(sub.TherapistFeedback != nil),
		})
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSubmissionDetails(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.submissions {
		if sub.SubmissionID == id {
			s.writeJSON(w, http.StatusOK, sub)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Submission not found")
}

func (s *Server) handleDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.submissions {
		if sub.SubmissionID == id {
			s.submissions = append(s.submissions[:i], s.submissions[i+1:]...)
			s.writeJSON(w, http.StatusOK, types.Status{Status: "success", Message: "Submission deleted"})
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "Submission not found")
}

// sessionUser resolves the username behind the request's session cookie
func (s *Server) sessionUser(r *http.Request) string {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[cookie.Value]
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.WithComponent("stubserver").WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, types.ErrorResponse{Detail: detail})
}

func pathID(r *http.Request, name string) int {
	id, _ := strconv.Atoi(mux.Vars(r)[name])
	return id
}
