package portalapi

// Patient is the directory row visible to admin and staff screens.
type Patient struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FullName joins first and last name for display.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// LoggedInPatient is the session identity returned by login. The insurance
// provider may be absent.
type LoggedInPatient struct {
	ID                string `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Gender            string `json:"gender"`
	DateOfBirth       string `json:"date_of_birth"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
}

// MedicalStaff is the full staff row including the weekday availability
// schedule keyed by canonical day names ("Monday".."Sunday").
type MedicalStaff struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Department     string          `json:"department"`
	Role           string          `json:"role"`
	Specialization string          `json:"specialization"`
	Schedule       map[string]bool `json:"schedule"`
}

func (s MedicalStaff) FullName() string {
	return s.FirstName + " " + s.LastName
}

// LoggedInStaff is the staff session identity (no schedule attached).
type LoggedInStaff struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

// EmergencyRequest is a patient-raised emergency. Status is the only field
// the server mutates after creation.
type EmergencyRequest struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Urgency      string `json:"urgency"`
	PatientEmail string `json:"patient_email"`
	Status       string `json:"status"`
}

// Appointment is a scheduled visit. Date is YYYY-MM-DD, Time is HH:MM
// 24-hour. PatientName and StaffName are optional server-side enrichment.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	StaffID     string `json:"staff_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Type        string `json:"appointment_type"`
	Status      string `json:"status"`
	PatientName string `json:"patient_name,omitempty"`
	StaffName   string `json:"staff_name,omitempty"`
}

// MedicalRecord is an append-only clinical note.
type MedicalRecord struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	StaffID     string `json:"staff_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StaffName   string `json:"staff_name,omitempty"`
}

// Prescription is an append-only medication order.
type Prescription struct {
	ID             string `json:"id"`
	PatientID      string `json:"patient_id"`
	StaffID        string `json:"staff_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Instructions   string `json:"instructions"`
}

// Medication is an inventory row.
type Medication struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	ExpirationDate string `json:"expiration_date"`
	Status         string `json:"status"`
}

// Equipment is an inventory row tracked by maintenance due date.
type Equipment struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	MaintenanceDueDate string `json:"maintenance_due_date"`
}

// Consumable is an inventory row.
type Consumable struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// BillingReport is a settled payment line.
type BillingReport struct {
	ID            string `json:"id"`
	PatientID     string `json:"patient_id"`
	AppointmentID string `json:"appointment_id"`
	PaymentType   string `json:"payment_type"`
	DatePaid      string `json:"date_paid"`
}
