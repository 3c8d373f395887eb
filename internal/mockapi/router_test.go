package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

func newTestServer(t *testing.T, seed bool) (*httptest.Server, *Store) {
	t.Helper()
	store := NewStore()
	if seed {
		store.Seed()
	}
	srv := httptest.NewServer(NewRouter(RouterConfig{
		Logger: logging.NewWithWriter("error", io.Discard),
		Store:  store,
	}))
	t.Cleanup(srv.Close)
	return srv, store
}

func getBody(t *testing.T, rawURL string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestAddPatientConflictOnDuplicateEmail(t *testing.T) {
	srv, _ := newTestServer(t, false)

	q := url.Values{}
	q.Set("first_name", "Lina")
	q.Set("last_name", "Aziz")
	q.Set("email", "lina@example.com")
	q.Set("password", "secret")
	target := srv.URL + "/add_patient?" + q.Encode()

	status, body := getBody(t, target)
	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(body), "message")

	status, body = getBody(t, target)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, string(body), "email already exists")
}

func TestStaffEmailCollidesWithPatientEmail(t *testing.T) {
	_, store := newTestServer(t, false)

	_, err := store.AddPatient(AddPatientParams{Email: "shared@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = store.AddStaff(AddStaffParams{Email: "shared@example.com", Password: "y"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginBranches(t *testing.T) {
	srv, _ := newTestServer(t, true)

	status, body := getBody(t, srv.URL+"/login?email=alice@example.com&password=password1")
	require.Equal(t, http.StatusOK, status)
	var patientResp struct {
		Patient *portalapi.LoggedInPatient `json:"patient"`
	}
	require.NoError(t, json.Unmarshal(body, &patientResp))
	require.NotNil(t, patientResp.Patient)
	assert.Equal(t, "Alice", patientResp.Patient.FirstName)

	status, body = getBody(t, srv.URL+"/login?email=noor@example.com&password=password3")
	require.Equal(t, http.StatusOK, status)
	var staffResp struct {
		Staff *portalapi.LoggedInStaff `json:"staff"`
	}
	require.NoError(t, json.Unmarshal(body, &staffResp))
	require.NotNil(t, staffResp.Staff)
	assert.Equal(t, "Cardiology", staffResp.Staff.Department)

	status, body = getBody(t, srv.URL+"/login?email=nobody@example.com&password=wrong")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, string(body), "error")
}

func TestReadsReturnBareArrays(t *testing.T) {
	srv, _ := newTestServer(t, true)

	for _, path := range []string{
		"/all_patients", "/all_staff", "/get_emergencies",
		"/get_medications", "/get_equipment", "/get_consumables", "/get_billing",
	} {
		status, body := getBody(t, srv.URL+path)
		assert.Equal(t, http.StatusOK, status, path)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(string(body)), "["), "expected array from %s, got %s", path, body)
	}
}

func TestScheduleAssignUnassign(t *testing.T) {
	srv, _ := newTestServer(t, true)

	status, _ := getBody(t, srv.URL+"/assign_staff_day?email=maya@example.com&day=Friday")
	require.Equal(t, http.StatusOK, status)

	_, body := getBody(t, srv.URL+"/all_staff")
	var roster []portalapi.MedicalStaff
	require.NoError(t, json.Unmarshal(body, &roster))
	var maya portalapi.MedicalStaff
	for _, st := range roster {
		if st.Email == "maya@example.com" {
			maya = st
		}
	}
	assert.True(t, maya.Schedule["Friday"])

	status, _ = getBody(t, srv.URL+"/assign_staff_day?email=maya@example.com&day=Friday&is_available=false")
	require.Equal(t, http.StatusOK, status)
	_, body = getBody(t, srv.URL+"/all_staff")
	require.NoError(t, json.Unmarshal(body, &roster))
	for _, st := range roster {
		if st.Email == "maya@example.com" {
			assert.False(t, st.Schedule["Friday"])
		}
	}

	status, _ = getBody(t, srv.URL+"/assign_staff_day?email=ghost@example.com&day=Monday")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestEmergencyLifecycle(t *testing.T) {
	srv, _ := newTestServer(t, false)

	status, _ := getBody(t, srv.URL+"/add_emergency?patient_email=alice@example.com&title=Chest+pain&location=Dorm+B&urgency=High")
	require.Equal(t, http.StatusOK, status)

	_, body := getBody(t, srv.URL+"/get_emergencies")
	var emergencies []portalapi.EmergencyRequest
	require.NoError(t, json.Unmarshal(body, &emergencies))
	require.Len(t, emergencies, 1)
	assert.Equal(t, "pending", emergencies[0].Status)

	status, _ = getBody(t, srv.URL+"/set_emergency_status?id="+emergencies[0].ID+"&status=dispatched")
	require.Equal(t, http.StatusOK, status)

	_, body = getBody(t, srv.URL+"/get_emergencies")
	require.NoError(t, json.Unmarshal(body, &emergencies))
	assert.Equal(t, "dispatched", emergencies[0].Status)

	status, _ = getBody(t, srv.URL+"/set_emergency_status?id=missing&status=resolved")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBillingSettlement(t *testing.T) {
	srv, store := newTestServer(t, true)

	patients := store.Patients()
	var alice portalapi.Patient
	for _, p := range patients {
		if p.Email == "alice@example.com" {
			alice = p
		}
	}
	require.NotEmpty(t, alice.ID)

	status, body := getBody(t, srv.URL+"/get_outstanding_balance?patient_id="+alice.ID)
	require.Equal(t, http.StatusOK, status)
	var balance struct {
		OutstandingBalance int `json:"outstanding_balance"`
	}
	require.NoError(t, json.Unmarshal(body, &balance))
	assert.Equal(t, appointmentCost, balance.OutstandingBalance)

	payload := strings.NewReader(`{"patient_id":"` + alice.ID + `","payment_type":"Cash","date_paid":"2026-08-31"}`)
	resp, err := http.Post(srv.URL+"/settle_payments", "application/json", payload)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status, body = getBody(t, srv.URL+"/get_outstanding_balance?patient_id="+alice.ID)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &balance))
	assert.Zero(t, balance.OutstandingBalance)

	_, body = getBody(t, srv.URL+"/get_billing")
	var reports []portalapi.BillingReport
	require.NoError(t, json.Unmarshal(body, &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "Cash", reports[0].PaymentType)
	assert.Equal(t, "2026-08-31", reports[0].DatePaid)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRequestLoggerEmitsPropagatedRequestID(t *testing.T) {
	buf := &syncBuffer{}
	srv := httptest.NewServer(NewRouter(RouterConfig{
		Logger: logging.NewWithWriter("info", buf),
		Store:  NewStore(),
	}))
	t.Cleanup(srv.Close)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "req-abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	// The completion log line carries the same ID chi put in the context.
	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), `"request_id":"req-abc-123"`)
	}, time.Second, 10*time.Millisecond)
}

func TestMetricsEndpointExposed(t *testing.T) {
	srv, _ := newTestServer(t, false)

	getBody(t, srv.URL+"/health")
	status, body := getBody(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "kuhealthcare_backend_requests_total")
}
