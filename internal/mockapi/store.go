// Package mockapi is an in-memory stand-in for the remote healthcare
// backend. It implements the same endpoint paths, envelopes, and status
// conventions the portal client depends on, so integration tests and
// local development do not need the live service.
package mockapi

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kuhealthcare/portal/internal/portalapi"
)

// appointmentCost is what the backend bills per unsettled appointment.
const appointmentCost = 120

var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrNotFound       = errors.New("not found")
)

type patientAccount struct {
	portalapi.LoggedInPatient
	Phone    string
	Password string
}

type staffAccount struct {
	portalapi.MedicalStaff
	Phone    string
	Password string
}

type appointmentRow struct {
	portalapi.Appointment
	Settled bool
}

// Store is the mutex-guarded in-memory state behind the mock backend.
type Store struct {
	mu            sync.RWMutex
	patients      []patientAccount
	staff         []staffAccount
	emergencies   []portalapi.EmergencyRequest
	appointments  []appointmentRow
	records       []portalapi.MedicalRecord
	prescriptions []portalapi.Prescription
	medications   []portalapi.Medication
	equipment     []portalapi.Equipment
	consumables   []portalapi.Consumable
	billing       []portalapi.BillingReport
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

func newID() string {
	return uuid.NewString()
}

func emptySchedule() map[string]bool {
	return map[string]bool{
		"Monday": false, "Tuesday": false, "Wednesday": false,
		"Thursday": false, "Friday": false, "Saturday": false, "Sunday": false,
	}
}

// AddPatientParams mirrors the /add_patient query fields.
type AddPatientParams struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Password    string
	Gender      string
	DateOfBirth string
}

// AddPatient registers a patient account. Emails are unique across both
// patient and staff accounts.
func (s *Store) AddPatient(p AddPatientParams) (portalapi.LoggedInPatient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTakenLocked(p.Email) {
		return portalapi.LoggedInPatient{}, ErrDuplicateEmail
	}
	account := patientAccount{
		LoggedInPatient: portalapi.LoggedInPatient{
			ID:          newID(),
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       p.Email,
			Gender:      p.Gender,
			DateOfBirth: p.DateOfBirth,
		},
		Phone:    p.Phone,
		Password: p.Password,
	}
	s.patients = append(s.patients, account)
	return account.LoggedInPatient, nil
}

// AddStaffParams mirrors the /add_staff query fields.
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

// AddStaff registers a staff account with an all-false weekday schedule.
func (s *Store) AddStaff(p AddStaffParams) (portalapi.MedicalStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTakenLocked(p.Email) {
		return portalapi.MedicalStaff{}, ErrDuplicateEmail
	}
	account := staffAccount{
		MedicalStaff: portalapi.MedicalStaff{
			ID:             newID(),
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Email:          p.Email,
			Department:     p.Department,
			Role:           p.Role,
			Specialization: p.Specialization,
			Schedule:       emptySchedule(),
		},
		Phone:    p.Phone,
		Password: p.Password,
	}
	s.staff = append(s.staff, account)
	return account.MedicalStaff, nil
}

func (s *Store) emailTakenLocked(email string) bool {
	for _, p := range s.patients {
		if strings.EqualFold(p.Email, email) {
			return true
		}
	}
	for _, st := range s.staff {
		if strings.EqualFold(st.Email, email) {
			return true
		}
	}
	return false
}

// Authenticate resolves a credential pair to either a patient or staff
// identity. Both return values are nil when nothing matches.
func (s *Store) Authenticate(email, password string) (*portalapi.LoggedInPatient, *portalapi.LoggedInStaff) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if strings.EqualFold(p.Email, email) && p.Password == password {
			identity := p.LoggedInPatient
			return &identity, nil
		}
	}
	for _, st := range s.staff {
		if strings.EqualFold(st.Email, email) && st.Password == password {
			identity := portalapi.LoggedInStaff{
				ID:             st.ID,
				FirstName:      st.FirstName,
				LastName:       st.LastName,
				Email:          st.Email,
				Department:     st.Department,
				Role:           st.Role,
				Specialization: st.Specialization,
			}
			return nil, &identity
		}
	}
	return nil, nil
}

// Patients lists the patient directory rows.
func (s *Store) Patients() []portalapi.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]portalapi.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, portalapi.Patient{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
		})
	}
	return out
}

// Staff lists the full roster including schedules. Schedules are copied
// so callers cannot mutate store state.
func (s *Store) Staff() []portalapi.MedicalStaff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]portalapi.MedicalStaff, 0, len(s.staff))
	for _, st := range s.staff {
		row := st.MedicalStaff
		row.Schedule = make(map[string]bool, len(st.Schedule))
		for day, avail := range st.Schedule {
			row.Schedule[day] = avail
		}
		out = append(out, row)
	}
	return out
}

// SetStaffDay flips one weekday on a staff schedule, keyed by email.
func (s *Store) SetStaffDay(email, day string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if strings.EqualFold(s.staff[i].Email, email) {
			if s.staff[i].Schedule == nil {
				s.staff[i].Schedule = emptySchedule()
			}
			s.staff[i].Schedule[day] = available
			return nil
		}
	}
	return ErrNotFound
}

// AddEmergency records a new emergency with status "pending".
func (s *Store) AddEmergency(patientEmail, title, location, urgency string) portalapi.EmergencyRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := portalapi.EmergencyRequest{
		ID:           newID(),
		Title:        title,
		Location:     location,
		Urgency:      urgency,
		PatientEmail: patientEmail,
		Status:       "pending",
	}
	s.emergencies = append(s.emergencies, e)
	return e
}

// Emergencies lists all emergency requests.
func (s *Store) Emergencies() []portalapi.EmergencyRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]portalapi.EmergencyRequest(nil), s.emergencies...)
}

// SetEmergencyStatus updates the dispatch status of one emergency.
func (s *Store) SetEmergencyStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.emergencies {
		if s.emergencies[i].ID == id {
			s.emergencies[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// AddAppointment books a visit and enriches it with patient and staff
// display names when the IDs resolve.
func (s *Store) AddAppointment(req portalapi.AddAppointmentRequest) portalapi.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := portalapi.Appointment{
		ID:        newID(),
		PatientID: req.PatientID,
		StaffID:   req.StaffID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Type:      req.Type,
		Status:    "pending",
	}
	for _, p := range s.patients {
		if p.ID == req.PatientID {
			a.PatientName = p.FirstName + " " + p.LastName
		}
	}
	for _, st := range s.staff {
		if st.ID == req.StaffID {
			a.StaffName = st.FirstName + " " + st.LastName
		}
	}
	s.appointments = append(s.appointments, appointmentRow{Appointment: a})
	return a
}

// PatientAppointments filters appointments by patient.
func (s *Store) PatientAppointments(patientID string) []portalapi.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []portalapi.Appointment{}
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, a.Appointment)
		}
	}
	return out
}

// StaffAppointments filters appointments by staff member.
func (s *Store) StaffAppointments(staffID string) []portalapi.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []portalapi.Appointment{}
	for _, a := range s.appointments {
		if a.StaffID == staffID {
			out = append(out, a.Appointment)
		}
	}
	return out
}

// PatientsOfStaff returns the patients who have at least one appointment
// with the staff member.
func (s *Store) PatientsOfStaff(staffID string) []portalapi.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	out := []portalapi.Patient{}
	for _, a := range s.appointments {
		if a.StaffID != staffID || seen[a.PatientID] {
			continue
		}
		seen[a.PatientID] = true
		for _, p := range s.patients {
			if p.ID == a.PatientID {
				out = append(out, portalapi.Patient{
					ID:        p.ID,
					FirstName: p.FirstName,
					LastName:  p.LastName,
					Email:     p.Email,
				})
			}
		}
	}
	return out
}

// AddMedicalRecord appends a clinical note, enriched with the staff
// display name when the ID resolves.
func (s *Store) AddMedicalRecord(req portalapi.AddMedicalRecordRequest) portalapi.MedicalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := portalapi.MedicalRecord{
		ID:          newID(),
		PatientID:   req.PatientID,
		StaffID:     req.StaffID,
		Title:       req.Title,
		Description: req.Description,
	}
	for _, st := range s.staff {
		if st.ID == req.StaffID {
			rec.StaffName = st.FirstName + " " + st.LastName
		}
	}
	s.records = append(s.records, rec)
	return rec
}

// PatientMedicalRecords filters records by patient.
func (s *Store) PatientMedicalRecords(patientID string) []portalapi.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []portalapi.MedicalRecord{}
	for _, r := range s.records {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out
}

// AddPrescription appends a prescription.
func (s *Store) AddPrescription(req portalapi.AddPrescriptionRequest) portalapi.Prescription {
	s.mu.Lock()
	defer s.mu.Unlock()
	rx := portalapi.Prescription{
		ID:             newID(),
		PatientID:      req.PatientID,
		StaffID:        req.StaffID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Instructions:   req.Instructions,
	}
	s.prescriptions = append(s.prescriptions, rx)
	return rx
}

// PatientPrescriptions filters prescriptions by patient.
func (s *Store) PatientPrescriptions(patientID string) []portalapi.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []portalapi.Prescription{}
	for _, rx := range s.prescriptions {
		if rx.PatientID == patientID {
			out = append(out, rx)
		}
	}
	return out
}

// AddMedication appends an inventory row with status "In Stock".
func (s *Store) AddMedication(req portalapi.AddMedicationRequest) portalapi.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := portalapi.Medication{
		ID:             newID(),
		Name:           req.Name,
		Quantity:       req.Quantity,
		ExpirationDate: req.ExpirationDate,
		Status:         "In Stock",
	}
	s.medications = append(s.medications, m)
	return m
}

// Medications lists the medication inventory.
func (s *Store) Medications() []portalapi.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]portalapi.Medication(nil), s.medications...)
}

// AddEquipment appends an equipment row.
func (s *Store) AddEquipment(req portalapi.AddEquipmentRequest) portalapi.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := portalapi.Equipment{
		ID:                 newID(),
		Name:               req.Name,
		MaintenanceDueDate: req.MaintenanceDueDate,
	}
	s.equipment = append(s.equipment, e)
	return e
}

// Equipment lists the equipment inventory.
func (s *Store) Equipment() []portalapi.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]portalapi.Equipment(nil), s.equipment...)
}

// AddConsumable appends a consumable row.
func (s *Store) AddConsumable(req portalapi.AddConsumableRequest) portalapi.Consumable {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := portalapi.Consumable{
		ID:       newID(),
		Name:     req.Name,
		Quantity: req.Quantity,
		Status:   req.Status,
	}
	s.consumables = append(s.consumables, c)
	return c
}

// Consumables lists the consumable inventory.
func (s *Store) Consumables() []portalapi.Consumable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]portalapi.Consumable(nil), s.consumables...)
}

// OutstandingBalance is the flat per-appointment cost times the number
// of unsettled appointments.
func (s *Store) OutstandingBalance(patientID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, a := range s.appointments {
		if a.PatientID == patientID && !a.Settled {
			total += appointmentCost
		}
	}
	return total
}

// SettlePayments marks every open appointment of the patient settled and
// writes one billing report per appointment.
func (s *Store) SettlePayments(req portalapi.SettlePaymentsRequest) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	settled := 0
	for i := range s.appointments {
		a := &s.appointments[i]
		if a.PatientID != req.PatientID || a.Settled {
			continue
		}
		a.Settled = true
		settled++
		s.billing = append(s.billing, portalapi.BillingReport{
			ID:            newID(),
			PatientID:     req.PatientID,
			AppointmentID: a.ID,
			PaymentType:   req.PaymentType,
			DatePaid:      req.DatePaid,
		})
	}
	return settled
}

// BillingReports lists every settled payment line.
func (s *Store) BillingReports() []portalapi.BillingReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]portalapi.BillingReport(nil), s.billing...)
}

// UpdateInsurance sets the insurance provider on a patient account.
func (s *Store) UpdateInsurance(patientID, provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == patientID {
			s.patients[i].InsuranceProvider = provider
			return nil
		}
	}
	return ErrNotFound
}
