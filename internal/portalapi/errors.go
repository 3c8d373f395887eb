package portalapi

import "fmt"

// AuthError is a failed login: bad credentials, an error payload, or a
// response the client cannot map to a role.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ServerError is a recoverable validation failure reported through the
// backend's {"error": ...} envelope. Forms showing this stay open so the
// user can correct and resubmit.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// ConflictError is a 409 from a registration endpoint: the email is
// already taken.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("email already exists: %s", e.Email)
}

// StatusError is any other non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

func newStatusError(status int, body []byte) *StatusError {
	return &StatusError{Code: status, Body: snippet(body)}
}

// UnknownResponseError is a 2xx body carrying neither a message nor an
// error key.
type UnknownResponseError struct {
	Body string
}

func (e *UnknownResponseError) Error() string {
	return fmt.Sprintf("unknown response from server: %s", e.Body)
}
