package portalapi

import (
	"context"
	"net/url"
)

// ListEmergencies returns every emergency request.
func (c *Client) ListEmergencies(ctx context.Context) ([]EmergencyRequest, error) {
	return fetchList[EmergencyRequest](ctx, c, "/get_emergencies", nil)
}

// AddEmergency raises a new emergency on behalf of a patient.
func (c *Client) AddEmergency(ctx context.Context, patientEmail, title, location, urgency string) (string, error) {
	q := url.Values{}
	q.Set("patient_email", patientEmail)
	q.Set("title", title)
	q.Set("location", location)
	q.Set("urgency", urgency)
	return c.submitGET(ctx, "/add_emergency", q)
}

// SetEmergencyStatus updates the dispatch status of an emergency.
func (c *Client) SetEmergencyStatus(ctx context.Context, id, status string) (string, error) {
	q := url.Values{}
	q.Set("id", id)
	q.Set("status", status)
	return c.submitGET(ctx, "/set_emergency_status", q)
}
