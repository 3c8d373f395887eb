package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

// Handler serves the backend endpoints over a Store.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates a Handler.
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, format string, args ...any) {
	h.writeJSON(w, status, map[string]string{"message": fmt.Sprintf(format, args...)})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, format string, args ...any) {
	h.writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// Login resolves a credential pair to a patient or staff identity.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	password := r.URL.Query().Get("password")
	patient, staff := h.store.Authenticate(email, password)
	switch {
	case patient != nil:
		h.writeJSON(w, http.StatusOK, map[string]any{"patient": patient})
	case staff != nil:
		h.writeJSON(w, http.StatusOK, map[string]any{"staff": staff})
	default:
		h.writeError(w, http.StatusUnauthorized, "invalid email or password")
	}
}

// AllPatients lists the patient directory.
func (h *Handler) AllPatients(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Patients())
}

// AllStaff lists the staff roster with schedules.
func (h *Handler) AllStaff(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Staff())
}

// PatientsOfStaff lists the patients seen by one staff member.
func (h *Handler) PatientsOfStaff(w http.ResponseWriter, r *http.Request) {
	staffID := r.URL.Query().Get("staff_id")
	h.writeJSON(w, http.StatusOK, h.store.PatientsOfStaff(staffID))
}

// AddPatient registers a patient account. Duplicate emails get 409.
func (h *Handler) AddPatient(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := AddPatientParams{
		FirstName:   q.Get("first_name"),
		LastName:    q.Get("last_name"),
		Email:       q.Get("email"),
		Phone:       q.Get("phone"),
		Password:    q.Get("password"),
		Gender:      q.Get("gender"),
		DateOfBirth: q.Get("date_of_birth"),
	}
	if params.Email == "" || params.Password == "" {
		h.writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if _, err := h.store.AddPatient(params); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			h.writeError(w, http.StatusConflict, "email already exists")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "failed to add patient")
		return
	}
	h.writeMessage(w, http.StatusCreated, "patient added successfully")
}

// AddStaff registers a staff account. Duplicate emails get 409.
func (h *Handler) AddStaff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := AddStaffParams{
		FirstName:      q.Get("first_name"),
		LastName:       q.Get("last_name"),
		Email:          q.Get("email"),
		Phone:          q.Get("phone"),
		Password:       q.Get("password"),
		Department:     q.Get("department"),
		Role:           q.Get("role"),
		Specialization: q.Get("specialization"),
	}
	if params.Email == "" || params.Password == "" {
		h.writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if _, err := h.store.AddStaff(params); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			h.writeError(w, http.StatusConflict, "email already exists")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "failed to add staff")
		return
	}
	h.writeMessage(w, http.StatusCreated, "staff added successfully")
}

// AssignStaffDay flips one weekday on a staff schedule. Absence of the
// is_available parameter means assign.
func (h *Handler) AssignStaffDay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	email := q.Get("email")
	day := q.Get("day")
	available := q.Get("is_available") != "false"
	if err := h.store.SetStaffDay(email, day, available); err != nil {
		h.writeError(w, http.StatusNotFound, "staff member not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "schedule updated")
}

// PatientAppointments lists appointments for one patient.
func (h *Handler) PatientAppointments(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patient_id")
	h.writeJSON(w, http.StatusOK, h.store.PatientAppointments(patientID))
}

// StaffAppointments lists appointments for one staff member.
func (h *Handler) StaffAppointments(w http.ResponseWriter, r *http.Request) {
	staffID := r.URL.Query().Get("staff_id")
	h.writeJSON(w, http.StatusOK, h.store.StaffAppointments(staffID))
}

// AddAppointment books a visit from a JSON body.
func (h *Handler) AddAppointment(w http.ResponseWriter, r *http.Request) {
	var req portalapi.AddAppointmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.PatientID == "" || req.StaffID == "" {
		h.writeError(w, http.StatusBadRequest, "patient_id and staff_id are required")
		return
	}
	h.store.AddAppointment(req)
	h.writeMessage(w, http.StatusCreated, "appointment booked successfully")
}

// GetEmergencies lists all emergency requests.
func (h *Handler) GetEmergencies(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Emergencies())
}

// AddEmergency records an emergency from query parameters.
func (h *Handler) AddEmergency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("title") == "" || q.Get("location") == "" {
		h.writeError(w, http.StatusBadRequest, "title and location are required")
		return
	}
	h.store.AddEmergency(q.Get("patient_email"), q.Get("title"), q.Get("location"), q.Get("urgency"))
	h.writeMessage(w, http.StatusOK, "emergency request submitted")
}

// SetEmergencyStatus updates one emergency's dispatch status.
func (h *Handler) SetEmergencyStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := h.store.SetEmergencyStatus(q.Get("id"), q.Get("status")); err != nil {
		h.writeError(w, http.StatusNotFound, "emergency not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "status updated")
}

// GetMedications lists the medication inventory.
func (h *Handler) GetMedications(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Medications())
}

// GetEquipment lists the equipment inventory.
func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Equipment())
}

// GetConsumables lists the consumable inventory.
func (h *Handler) GetConsumables(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Consumables())
}

// AddMedication adds a medication row from a JSON body.
func (h *Handler) AddMedication(w http.ResponseWriter, r *http.Request) {
	var req portalapi.AddMedicationRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	h.store.AddMedication(req)
	h.writeMessage(w, http.StatusCreated, "medication added successfully")
}

// AddEquipment adds an equipment row from a JSON body.
func (h *Handler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	var req portalapi.AddEquipmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	h.store.AddEquipment(req)
	h.writeMessage(w, http.StatusCreated, "equipment added successfully")
}

// AddConsumable adds a consumable row from a JSON body.
func (h *Handler) AddConsumable(w http.ResponseWriter, r *http.Request) {
	var req portalapi.AddConsumableRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	h.store.AddConsumable(req)
	h.writeMessage(w, http.StatusCreated, "consumable added successfully")
}

// PatientMedicalRecords lists clinical notes for one patient.
func (h *Handler) PatientMedicalRecords(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patient_id")
	h.writeJSON(w, http.StatusOK, h.store.PatientMedicalRecords(patientID))
}

// PatientPrescriptions lists prescriptions for one patient.
func (h *Handler) PatientPrescriptions(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patient_id")
	h.writeJSON(w, http.StatusOK, h.store.PatientPrescriptions(patientID))
}

// AddMedicalRecord appends a clinical note from a JSON body.
func (h *Handler) AddMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var req portalapi.AddMedicalRecordRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.PatientID == "" || req.Title == "" {
		h.writeError(w, http.StatusBadRequest, "patient_id and title are required")
		return
	}
	h.store.AddMedicalRecord(req)
	h.writeMessage(w, http.StatusCreated, "medical record added successfully")
}

// AddPrescription appends a prescription from a JSON body.
func (h *Handler) AddPrescription(w http.ResponseWriter, r *http.Request) {
	var req portalapi.AddPrescriptionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.PatientID == "" || req.MedicationName == "" {
		h.writeError(w, http.StatusBadRequest, "patient_id and medication_name are required")
		return
	}
	h.store.AddPrescription(req)
	h.writeMessage(w, http.StatusCreated, "prescription added successfully")
}

// GetBilling lists every settled payment line.
func (h *Handler) GetBilling(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.BillingReports())
}

// GetOutstandingBalance reports the open balance for one patient.
func (h *Handler) GetOutstandingBalance(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patient_id")
	balance := h.store.OutstandingBalance(patientID)
	h.writeJSON(w, http.StatusOK, map[string]int{"outstanding_balance": balance})
}

// SettlePayments settles every open appointment for one patient.
func (h *Handler) SettlePayments(w http.ResponseWriter, r *http.Request) {
	var req portalapi.SettlePaymentsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.PatientID == "" {
		h.writeError(w, http.StatusBadRequest, "patient_id is required")
		return
	}
	settled := h.store.SettlePayments(req)
	h.writeMessage(w, http.StatusOK, "settled %d payments", settled)
}

// UpdateInsurance sets the insurance provider on a patient account.
func (h *Handler) UpdateInsurance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := h.store.UpdateInsurance(q.Get("patient_id"), q.Get("insurance_provider")); err != nil {
		h.writeError(w, http.StatusNotFound, "patient not found")
		return
	}
	h.writeMessage(w, http.StatusOK, "insurance updated")
}
