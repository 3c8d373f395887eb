package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

// countingBackend serves canned responses per path and counts hits.
type countingBackend struct {
	mu        sync.Mutex
	hits      map[string]int
	responses map[string]string
	status    map[string]int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{
		hits:      map[string]int{},
		responses: map[string]string{},
		status:    map[string]int{},
	}
}

func (b *countingBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.hits[r.URL.Path]++
	body, ok := b.responses[r.URL.Path]
	status := b.status[r.URL.Path]
	b.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
	}
	if ok {
		_, _ = w.Write([]byte(body))
	} else {
		_, _ = w.Write([]byte(`[]`))
	}
}

func (b *countingBackend) hitCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

func newAdminFixture(t *testing.T) (*Admin, *countingBackend) {
	t.Helper()
	backend := newCountingBackend()
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)
	client := portalapi.New(ts.URL, logging.Default())
	return NewAdmin(client, logging.Default()), backend
}

func TestSubmitMedication_SuccessTriggersSingleRefetch(t *testing.T) {
	admin, backend := newAdminFixture(t)
	backend.responses["/add_medication"] = `{"message":"ok"}`
	backend.responses["/get_medications"] = `[{"id":"m1","name":"Paracetamol","quantity":40,"expiration_date":"2026-12-01","status":"In Stock"}]`

	err := admin.SubmitMedication(context.Background(), "Paracetamol", "40", "2026-12-01")
	require.NoError(t, err)

	assert.Equal(t, 1, backend.hitCount("/add_medication"))
	assert.Equal(t, 1, backend.hitCount("/get_medications"), "exactly one re-fetch after success")
	require.Len(t, admin.Medications, 1)
	assert.Equal(t, "Paracetamol", admin.Medications[0].Name)
}

func TestSubmitMedication_NonNumericQuantityNoNetwork(t *testing.T) {
	admin, backend := newAdminFixture(t)

	err := admin.SubmitMedication(context.Background(), "Paracetamol", "forty", "2026-12-01")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, backend.hitCount("/add_medication"), "validation failure must not issue a request")
	assert.Equal(t, 0, backend.hitCount("/get_medications"))
}

func TestSubmitMedication_ServerErrorKeepsFormOpen(t *testing.T) {
	admin, backend := newAdminFixture(t)
	backend.responses["/add_medication"] = `{"error":"dup"}`

	err := admin.SubmitMedication(context.Background(), "Paracetamol", "40", "2026-12-01")

	var srvErr *portalapi.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "dup", srvErr.Message)
	assert.Equal(t, 0, backend.hitCount("/get_medications"), "no re-fetch on server validation failure")
}

func TestUpdateEmergencyStatus(t *testing.T) {
	admin, backend := newAdminFixture(t)
	backend.responses["/set_emergency_status"] = `{"message":"status updated"}`
	backend.responses["/get_emergencies"] = `[{"id":"e1","title":"Fall","location":"Ward 3","urgency":"high","patient_email":"p@example.com","status":"completed"}]`

	require.NoError(t, admin.UpdateEmergencyStatus(context.Background(), "e1", "completed"))
	assert.Equal(t, 1, backend.hitCount("/get_emergencies"))
	require.Len(t, admin.Emergencies, 1)
	assert.Equal(t, "completed", admin.Emergencies[0].Status)
}

func TestUpdateEmergencyStatus_EmptyStatus(t *testing.T) {
	admin, backend := newAdminFixture(t)

	err := admin.UpdateEmergencyStatus(context.Background(), "e1", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, backend.hitCount("/set_emergency_status"))
}

func TestSubmitStaff_ConflictSurfaces(t *testing.T) {
	admin, backend := newAdminFixture(t)
	backend.status["/add_staff"] = http.StatusConflict

	err := admin.SubmitStaff(context.Background(), AddStaffForm{
		FirstName: "Omar",
		LastName:  "Haddad",
		Email:     "omar@example.com",
		Password:  "pw",
	})

	var conflict *portalapi.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 0, backend.hitCount("/all_staff"), "no roster re-fetch on conflict")
}

func TestRefresh_FailureKeepsPriorSnapshot(t *testing.T) {
	admin, backend := newAdminFixture(t)
	backend.responses["/all_patients"] = `[{"id":"p1","first_name":"Aisha","last_name":"Khan","email":"aisha@example.com"}]`

	admin.RefreshPatients(context.Background())
	require.Len(t, admin.Patients, 1)

	backend.mu.Lock()
	backend.status["/all_patients"] = http.StatusBadGateway
	backend.mu.Unlock()

	admin.RefreshPatients(context.Background())
	assert.Len(t, admin.Patients, 1, "failed fetch must leave the prior snapshot untouched")
}

func TestAssignAndUnassignStaffDay(t *testing.T) {
	admin, backend := newAdminFixture(t)
	backend.responses["/assign_staff_day"] = `{"message":"ok"}`
	backend.responses["/all_staff"] = `[{"id":"s1","first_name":"Omar","last_name":"Haddad","email":"omar@example.com","department":"Cardiology","role":"Doctor","specialization":"Cardiologist","schedule":{"Monday":true}}]`

	require.NoError(t, admin.AssignStaffDay(context.Background(), "omar@example.com", "Monday"))
	require.NoError(t, admin.UnassignStaffDay(context.Background(), "omar@example.com", "Monday"))
	assert.Equal(t, 2, backend.hitCount("/assign_staff_day"))
	assert.Equal(t, 2, backend.hitCount("/all_staff"))
}
