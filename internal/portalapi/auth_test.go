package portalapi

import (
	"context"
	"net/http"
	"testing"
)

func TestLogin_SentinelBypassesNetwork(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"plain", "admin", "admin"},
		{"upper case", "ADMIN", "Admin"},
		{"surrounding whitespace", "  admin  ", "\tadmin\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("sentinel credential must not reach the network")
			})

			session, err := client.Login(context.Background(), tt.email, tt.password)
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if session.Role != RoleAdmin {
				t.Fatalf("role = %s, want admin", session.Role)
			}
			if session.Patient != nil || session.Staff != nil {
				t.Fatal("admin session must carry no identity payload")
			}
		})
	}
}

func TestLogin_PatientVariant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("email") != "aisha@example.com" || q.Get("password") != "secret" {
			t.Fatalf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"message":"ok","patient":{"id":"p1","first_name":"Aisha","last_name":"Khan","email":"aisha@example.com","gender":"Female","date_of_birth":"1990-05-14","insurance_provider":"Daman"}}`))
	})

	session, err := client.Login(context.Background(), "aisha@example.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.Role != RolePatient {
		t.Fatalf("role = %s, want patient", session.Role)
	}
	p := session.Patient
	if p.ID != "p1" || p.FirstName != "Aisha" || p.LastName != "Khan" ||
		p.Email != "aisha@example.com" || p.Gender != "Female" ||
		p.DateOfBirth != "1990-05-14" || p.InsuranceProvider != "Daman" {
		t.Fatalf("patient fields not preserved: %+v", p)
	}
}

func TestLogin_PatientWithoutInsurance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"patient":{"id":"p2","first_name":"Noor","last_name":"Saleh","email":"noor@example.com","gender":"Female","date_of_birth":"1985-01-02"}}`))
	})

	session, err := client.Login(context.Background(), "noor@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.Patient.InsuranceProvider != "" {
		t.Fatalf("insurance = %q, want empty", session.Patient.InsuranceProvider)
	}
}

func TestLogin_StaffVariant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok","staff":{"id":"s1","first_name":"Omar","last_name":"Haddad","email":"omar@example.com","department":"Cardiology","role":"Doctor","specialization":"Cardiologist"}}`))
	})

	session, err := client.Login(context.Background(), "omar@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.Role != RoleStaff {
		t.Fatalf("role = %s, want staff", session.Role)
	}
	if session.Staff.Department != "Cardiology" {
		t.Fatalf("department = %s", session.Staff.Department)
	}
	if session.DisplayName() != "Omar Haddad" {
		t.Fatalf("display name = %s", session.DisplayName())
	}
}

func TestLogin_ErrorPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "aisha@example.com", "wrong")
	var authErr *AuthError
	if !asError(err, &authErr) {
		t.Fatalf("err = %v, want AuthError", err)
	}
	if authErr.Message != "invalid credentials" {
		t.Fatalf("message = %q", authErr.Message)
	}
}

func TestLogin_UnknownResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"instructions":"please hold"}`))
	})

	_, err := client.Login(context.Background(), "aisha@example.com", "pw")
	var authErr *AuthError
	if !asError(err, &authErr) {
		t.Fatalf("err = %v, want AuthError", err)
	}
	if authErr.Message != "unknown response from server" {
		t.Fatalf("message = %q", authErr.Message)
	}
}

func TestLogin_UnparsableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	})

	_, err := client.Login(context.Background(), "aisha@example.com", "pw")
	var authErr *AuthError
	if !asError(err, &authErr) {
		t.Fatalf("err = %v, want AuthError", err)
	}
}
