package portalapi

import (
	"context"
	"net/url"
)

// PatientAppointments returns all appointments of one patient.
func (c *Client) PatientAppointments(ctx context.Context, patientID string) ([]Appointment, error) {
	q := url.Values{}
	q.Set("patient_id", patientID)
	return fetchList[Appointment](ctx, c, "/patient_appointments", q)
}

// StaffAppointments returns all appointments assigned to one staff member.
func (c *Client) StaffAppointments(ctx context.Context, staffID string) ([]Appointment, error) {
	q := url.Values{}
	q.Set("staff_id", staffID)
	return fetchList[Appointment](ctx, c, "/staff_appointments", q)
}

// AddAppointmentRequest books a visit. Date is YYYY-MM-DD, Time HH:MM.
// The backend performs no overlap or conflict checks and neither does the
// client.
type AddAppointmentRequest struct {
	PatientID string `json:"patient_id"`
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Type      string `json:"appointment_type"`
}

// AddAppointment books an appointment and returns the server message.
func (c *Client) AddAppointment(ctx context.Context, req AddAppointmentRequest) (string, error) {
	return c.submitPOST(ctx, "/add_appointment", req)
}
