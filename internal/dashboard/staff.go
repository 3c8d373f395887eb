package dashboard

import (
	"context"

	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

// Staff owns the snapshots behind the staff screens: own appointments,
// assigned patients, and the medication names offered by the
// prescription form.
type Staff struct {
	client *portalapi.Client
	logger *logging.Logger

	Identity portalapi.LoggedInStaff

	Appointments    []portalapi.Appointment
	Patients        []portalapi.Patient
	MedicationNames []string
}

// NewStaff creates the dashboard state for a logged-in staff member.
func NewStaff(client *portalapi.Client, identity portalapi.LoggedInStaff, logger *logging.Logger) *Staff {
	if logger == nil {
		logger = logging.Default()
	}
	return &Staff{client: client, logger: logger, Identity: identity}
}

// RefreshAll loads every staff collection.
func (s *Staff) RefreshAll(ctx context.Context) {
	s.RefreshAppointments(ctx)
	s.RefreshPatients(ctx)
	s.RefreshMedicationNames(ctx)
}

func (s *Staff) RefreshAppointments(ctx context.Context) {
	appts, err := s.client.StaffAppointments(ctx, s.Identity.ID)
	if err != nil {
		s.logger.Debug("appointments fetch failed", "error", err)
		return
	}
	s.Appointments = appts
}

func (s *Staff) RefreshPatients(ctx context.Context) {
	patients, err := s.client.PatientsOfStaff(ctx, s.Identity.ID)
	if err != nil {
		s.logger.Debug("patients fetch failed", "error", err)
		return
	}
	s.Patients = patients
}

// RefreshMedicationNames feeds the prescription form's picker.
func (s *Staff) RefreshMedicationNames(ctx context.Context) {
	medications, err := s.client.ListMedications(ctx)
	if err != nil {
		s.logger.Debug("medications fetch failed", "error", err)
		return
	}
	names := make([]string, 0, len(medications))
	for _, m := range medications {
		names = append(names, m.Name)
	}
	s.MedicationNames = names
}

// SubmitMedicalRecord appends a clinical note for one of the staff
// member's patients.
func (s *Staff) SubmitMedicalRecord(ctx context.Context, patientID, title, description string) error {
	if err := requireFields("patient", patientID, "title", title, "notes", description); err != nil {
		return err
	}
	_, err := s.client.AddMedicalRecord(ctx, portalapi.AddMedicalRecordRequest{
		PatientID:   patientID,
		StaffID:     s.Identity.ID,
		Title:       title,
		Description: description,
	})
	return err
}

// SubmitPrescription writes a prescription using a medication name picked
// from the fetched inventory.
func (s *Staff) SubmitPrescription(ctx context.Context, patientID, medicationName, dosage, instructions string) error {
	if err := requireFields(
		"patient", patientID,
		"medication", medicationName,
		"dosage", dosage,
	); err != nil {
		return err
	}
	_, err := s.client.AddPrescription(ctx, portalapi.AddPrescriptionRequest{
		PatientID:      patientID,
		StaffID:        s.Identity.ID,
		MedicationName: medicationName,
		Dosage:         dosage,
		Instructions:   instructions,
	})
	return err
}
