package portalapi

import (
	"context"
	"net/url"
)

// ListPatients returns every registered patient.
func (c *Client) ListPatients(ctx context.Context) ([]Patient, error) {
	return fetchList[Patient](ctx, c, "/all_patients", nil)
}

// ListStaff returns every staff member including weekday schedules.
func (c *Client) ListStaff(ctx context.Context) ([]MedicalStaff, error) {
	return fetchList[MedicalStaff](ctx, c, "/all_staff", nil)
}

// PatientsOfStaff returns the patients assigned to one staff member,
// filtered server-side.
func (c *Client) PatientsOfStaff(ctx context.Context, staffID string) ([]Patient, error) {
	q := url.Values{}
	q.Set("staff_id", staffID)
	return fetchList[Patient](ctx, c, "/patients_of_staff", q)
}

// RegisterPatientParams is the patient signup form.
type RegisterPatientParams struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Password    string
	Gender      string
	DateOfBirth string // YYYY-MM-DD
}

// RegisterPatient creates a patient account. Returns *ConflictError when
// the email is already registered.
func (c *Client) RegisterPatient(ctx context.Context, p RegisterPatientParams) error {
	q := url.Values{}
	q.Set("first_name", p.FirstName)
	q.Set("last_name", p.LastName)
	q.Set("email", p.Email)
	q.Set("phone", p.Phone)
	q.Set("password", p.Password)
	q.Set("gender", p.Gender)
	q.Set("date_of_birth", p.DateOfBirth)
	return c.register(ctx, "/add_patient", q)
}

// AddStaffParams is the admin add-staff form.
type AddStaffParams struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Password       string
	Department     string
	Role           string
	Specialization string
}

// AddStaff creates a staff account. Returns *ConflictError when the email
// is already registered.
func (c *Client) AddStaff(ctx context.Context, p AddStaffParams) error {
	q := url.Values{}
	q.Set("first_name", p.FirstName)
	q.Set("last_name", p.LastName)
	q.Set("email", p.Email)
	q.Set("phone", p.Phone)
	q.Set("password", p.Password)
	q.Set("department", p.Department)
	q.Set("role", p.Role)
	q.Set("specialization", p.Specialization)
	return c.register(ctx, "/add_staff", q)
}

// AssignStaffDay marks a staff member available on a weekday.
func (c *Client) AssignStaffDay(ctx context.Context, email, day string) (string, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("day", day)
	return c.submitGET(ctx, "/assign_staff_day", q)
}

// UnassignStaffDay clears a staff member's availability on a weekday.
func (c *Client) UnassignStaffDay(ctx context.Context, email, day string) (string, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("day", day)
	q.Set("is_available", "false")
	return c.submitGET(ctx, "/assign_staff_day", q)
}
