package dashboard

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

func newPatientFixture(t *testing.T) (*Patient, *countingBackend) {
	t.Helper()
	backend := newCountingBackend()
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)
	client := portalapi.New(ts.URL, logging.Default())
	identity := portalapi.LoggedInPatient{
		ID:        "p1",
		FirstName: "Aisha",
		LastName:  "Khan",
		Email:     "aisha@example.com",
	}
	return NewPatient(client, identity, logging.Default()), backend
}

func TestPatientRefreshAll(t *testing.T) {
	patient, backend := newPatientFixture(t)
	backend.responses["/patient_appointments"] = `[{"id":"a1","patient_id":"p1","staff_id":"s1","date":"2026-09-15","time":"10:30","reason":"Checkup","appointment_type":"General","status":"confirmed"}]`
	backend.responses["/get_patient_medical_records"] = `[{"id":"r1","patient_id":"p1","staff_id":"s1","title":"Flu","description":"Rest and fluids","staff_name":"Dr. Haddad"}]`
	backend.responses["/get_patient_prescriptions"] = `[{"id":"rx1","patient_id":"p1","staff_id":"s1","medication_name":"Paracetamol","dosage":"500mg","instructions":"after meals"}]`
	backend.responses["/get_outstanding_balance"] = `{"outstanding_balance":240}`

	patient.RefreshAll(context.Background())

	require.Len(t, patient.Appointments, 1)
	require.Len(t, patient.Records, 1)
	require.Len(t, patient.Prescriptions, 1)
	assert.Equal(t, 240, patient.Balance)
	assert.Equal(t, "Dr. Haddad", patient.Records[0].StaffName)
}

func TestPatientUpcomingPast(t *testing.T) {
	patient, _ := newPatientFixture(t)
	patient.Appointments = []portalapi.Appointment{
		{ID: "a1", Date: "2026-08-30"},
		{ID: "a2", Date: "2026-09-15"},
	}

	upcoming := patient.Upcoming(today)
	past := patient.Past(today)
	require.Len(t, upcoming, 1)
	require.Len(t, past, 1)
	assert.Equal(t, "a2", upcoming[0].ID)
	assert.Equal(t, "a1", past[0].ID)
}

func TestRequestEmergency(t *testing.T) {
	patient, backend := newPatientFixture(t)
	backend.responses["/add_emergency"] = `{"message":"emergency submitted"}`

	msg, err := patient.RequestEmergency(context.Background(), "Fall", "Ward 3", "high")
	require.NoError(t, err)
	assert.Equal(t, "emergency submitted", msg)
}

func TestRequestEmergency_MissingFields(t *testing.T) {
	patient, backend := newPatientFixture(t)

	_, err := patient.RequestEmergency(context.Background(), "Fall", "", "high")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, backend.hitCount("/add_emergency"))
}

func TestBookAppointment_RefetchesAppointments(t *testing.T) {
	patient, backend := newPatientFixture(t)
	backend.responses["/add_appointment"] = `{"message":"appointment booked"}`
	backend.responses["/patient_appointments"] = `[{"id":"a9","patient_id":"p1","staff_id":"s1","date":"2026-09-20","time":"09:00","reason":"Follow-up","appointment_type":"General","status":"pending"}]`

	err := patient.BookAppointment(context.Background(), "s1", "2026-09-20", "09:00", "Follow-up", "General")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.hitCount("/patient_appointments"))
	require.Len(t, patient.Appointments, 1)
	assert.Equal(t, "a9", patient.Appointments[0].ID)
}

func TestSettlePayments_RefetchesBilling(t *testing.T) {
	patient, backend := newPatientFixture(t)
	backend.responses["/settle_payments"] = `{"message":"payments settled"}`
	backend.responses["/patient_appointments"] = `[]`
	backend.responses["/get_outstanding_balance"] = `{"outstanding_balance":0}`
	patient.Balance = 240

	msg, err := patient.SettlePayments(context.Background(), "Cash")
	require.NoError(t, err)
	assert.Equal(t, "payments settled", msg)
	assert.Equal(t, 0, patient.Balance)
	assert.Equal(t, 1, backend.hitCount("/patient_appointments"))
	assert.Equal(t, 1, backend.hitCount("/get_outstanding_balance"))
}

func TestUpdateInsurance_MirrorsIdentity(t *testing.T) {
	patient, backend := newPatientFixture(t)
	backend.responses["/update_insurance"] = `{"message":"insurance updated"}`

	require.NoError(t, patient.UpdateInsurance(context.Background(), "Daman"))
	assert.Equal(t, "Daman", patient.Identity.InsuranceProvider)
}
