package portalapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// Role discriminates the post-login session variant.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
	RoleStaff   Role = "staff"
)

// Session is the resolved identity after login. Exactly one payload
// pointer is set for patient/staff roles; admin carries none.
type Session struct {
	Role    Role
	Patient *LoggedInPatient
	Staff   *LoggedInStaff
}

// AdminSession is the identity produced by the sentinel credential.
func AdminSession() Session {
	return Session{Role: RoleAdmin}
}

// PatientSession wraps a decoded patient identity.
func PatientSession(p LoggedInPatient) Session {
	return Session{Role: RolePatient, Patient: &p}
}

// StaffSession wraps a decoded staff identity.
func StaffSession(s LoggedInStaff) Session {
	return Session{Role: RoleStaff, Staff: &s}
}

// DisplayName renders the session owner for greeting lines.
func (s Session) DisplayName() string {
	switch s.Role {
	case RolePatient:
		return s.Patient.FirstName + " " + s.Patient.LastName
	case RoleStaff:
		return s.Staff.FirstName + " " + s.Staff.LastName
	default:
		return "Admin"
	}
}

const (
	sentinelEmail    = "admin"
	sentinelPassword = "admin"
)

// IsSentinel reports whether the credential pair matches the hardcoded
// admin bypass, ignoring surrounding whitespace and case.
func IsSentinel(email, password string) bool {
	return strings.EqualFold(strings.TrimSpace(email), sentinelEmail) &&
		strings.EqualFold(strings.TrimSpace(password), sentinelPassword)
}

type loginResponse struct {
	Patient *LoggedInPatient `json:"patient"`
	Staff   *LoggedInStaff   `json:"staff"`
	Error   string           `json:"error"`
}

// Login resolves a credential pair to a session. The sentinel pair
// short-circuits to Admin without touching the network; everything else
// goes to the backend login endpoint with the credentials as query
// parameters. No token is issued: later calls are independent
// unauthenticated requests.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	if IsSentinel(email, password) {
		return AdminSession(), nil
	}

	q := url.Values{}
	q.Set("email", strings.TrimSpace(email))
	q.Set("password", strings.TrimSpace(password))

	status, body, err := c.do(ctx, http.MethodGet, "/login", q, nil)
	if err != nil {
		return Session{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Session{}, &AuthError{Message: "failed to parse server response"}
	}
	switch {
	case resp.Patient != nil:
		return PatientSession(*resp.Patient), nil
	case resp.Staff != nil:
		return StaffSession(*resp.Staff), nil
	case resp.Error != "":
		return Session{}, &AuthError{Message: resp.Error}
	case status < 200 || status > 299:
		return Session{}, &AuthError{Message: newStatusError(status, body).Error()}
	default:
		return Session{}, &AuthError{Message: "unknown response from server"}
	}
}
