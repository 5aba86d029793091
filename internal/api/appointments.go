package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// Therapists fetches the browsable therapist directory via GET /therapists
func (c *Client) Therapists(ctx context.Context) ([]types.TherapistListItem, error) {
	var out []types.TherapistListItem
	if err := c.do(ctx, "therapists", http.MethodGet, "therapists", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TherapistDetails fetches GET /therapists/{id}
func (c *Client) TherapistDetails(ctx context.Context, therapistID int) (*types.Therapist, error) {
	var out types.Therapist
	path := fmt.Sprintf("therapists/%d", therapistID)
	if err := c.do(ctx, "therapist_details", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TherapistAvailability fetches GET /therapists/{id}/availability, scoped
// to a single day when date is non-empty
func (c *Client) TherapistAvailability(ctx context.Context, therapistID int, date string) ([]types.AvailableTimeSlot, error) {
	var query url.Values
	if date != "" {
		query = url.Values{"date": []string{date}}
	}
	var out []types.AvailableTimeSlot
	path := fmt.Sprintf("therapists/%d/availability", therapistID)
	if err := c.do(ctx, "therapist_availability", http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPatient asks to be matched with the given therapist via
// POST /therapists/{id}/add_patient. The server resolves the patient from
// the session credential.
func (c *Client) AddPatient(ctx context.Context, therapistID int) (*types.Status, error) {
	var out types.Status
	path := fmt.Sprintf("therapists/%d/add_patient", therapistID)
	if err := c.do(ctx, "add_patient", http.MethodPost, path, nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RateTherapist submits a rating via POST /therapists/{id}/rate
func (c *Client) RateTherapist(ctx context.Context, therapistID int, req *types.TherapistRatingRequest) (*types.Status, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	var out types.Status
	path := fmt.Sprintf("therapists/%d/rate", therapistID)
	if err := c.do(ctx, "rate_therapist", http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserTherapist fetches the matched therapist via GET /api/user/therapist
func (c *Client) UserTherapist(ctx context.Context) (*types.Therapist, error) {
	var out types.Therapist
	if err := c.do(ctx, "user_therapist", http.MethodGet, "api/user/therapist", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookAppointment submits a booking request via POST /api/book-appointment.
// Booking conflicts come back as validation errors carrying the server's
// message verbatim.
func (c *Client) BookAppointment(ctx context.Context, req *types.AppointmentRequest) (*types.AppointmentResponse, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	var out types.AppointmentResponse
	if err := c.do(ctx, "book_appointment", http.MethodPost, "api/book-appointment", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserAppointments fetches GET /api/user/appointments
func (c *Client) UserAppointments(ctx context.Context) ([]types.Appointment, error) {
	var out []types.Appointment
	if err := c.do(ctx, "user_appointments", http.MethodGet, "api/user/appointments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserNextAppointment fetches GET /api/user/appointments/next; nil without
// error when nothing is scheduled
func (c *Client) UserNextAppointment(ctx context.Context) (*types.Appointment, error) {
	var out types.Appointment
	if err := c.do(ctx, "user_next_appointment", http.MethodGet, "api/user/appointments/next", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.AppointmentID == 0 {
		return nil, nil
	}
	return &out, nil
}

// AppointmentDetails fetches GET /api/appointments/{id}
func (c *Client) AppointmentDetails(ctx context.Context, appointmentID int) (*types.Appointment, error) {
	var out types.Appointment
	path := fmt.Sprintf("api/appointments/%d", appointmentID)
	if err := c.do(ctx, "appointment_details", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatientAppointments fetches GET /api/patients/{id}/appointments
func (c *Client) PatientAppointments(ctx context.Context, patientID int) ([]types.Appointment, error) {
	var out []types.Appointment
	path := fmt.Sprintf("api/patients/%d/appointments", patientID)
	if err := c.do(ctx, "patient_appointments", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
