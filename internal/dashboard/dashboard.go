// Package dashboard holds the per-role view state behind each portal
// screen. Every collection is a full-replacement snapshot of the last
// successful fetch: a failed refresh leaves the previous snapshot in
// place and the screen renders whatever is there. Submit methods run the
// client-side required-field checks, call the backend, and on success
// re-fetch the dependent collection so the screen re-renders.
package dashboard

import "strconv"

// ValidationError is a client-side form failure: a required field is
// empty or a numeric field does not parse. No request is issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func requireFields(pairs ...string) error {
	// pairs alternate label, value.
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return &ValidationError{Message: "please fill in all fields: " + pairs[i] + " is required"}
		}
	}
	return nil
}

func parseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Message: "quantity must be a number"}
	}
	return n, nil
}
