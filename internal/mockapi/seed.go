package mockapi

import "github.com/kuhealthcare/portal/internal/portalapi"

// Seed loads a small demo dataset: two patients, two staff members, a
// booked appointment, and a few inventory rows.
func (s *Store) Seed() {
	alice, _ := s.AddPatient(AddPatientParams{
		FirstName:   "Alice",
		LastName:    "Hamdan",
		Email:       "alice@example.com",
		Phone:       "0501112222",
		Password:    "password1",
		Gender:      "Female",
		DateOfBirth: "1990-04-12",
	})
	_, _ = s.AddPatient(AddPatientParams{
		FirstName:   "Omar",
		LastName:    "Saleh",
		Email:       "omar@example.com",
		Phone:       "0503334444",
		Password:    "password2",
		Gender:      "Male",
		DateOfBirth: "1985-11-03",
	})

	drNoor, _ := s.AddStaff(AddStaffParams{
		FirstName:      "Noor",
		LastName:       "Khalid",
		Email:          "noor@example.com",
		Phone:          "0505556666",
		Password:       "password3",
		Department:     "Cardiology",
		Role:           "Doctor",
		Specialization: "Cardiologist",
	})
	_, _ = s.AddStaff(AddStaffParams{
		FirstName:      "Maya",
		LastName:       "Farouk",
		Email:          "maya@example.com",
		Phone:          "0507778888",
		Password:       "password4",
		Department:     "Emergency",
		Role:           "Nurse",
		Specialization: "Triage",
	})
	_ = s.SetStaffDay(drNoor.Email, "Monday", true)
	_ = s.SetStaffDay(drNoor.Email, "Wednesday", true)

	s.AddAppointment(portalapi.AddAppointmentRequest{
		PatientID: alice.ID,
		StaffID:   drNoor.ID,
		Date:      "2026-09-07",
		Time:      "10:30",
		Reason:    "Annual checkup",
		Type:      "Consultation",
	})

	s.AddMedication(portalapi.AddMedicationRequest{Name: "Paracetamol", Quantity: 200, ExpirationDate: "2027-01-31"})
	s.AddMedication(portalapi.AddMedicationRequest{Name: "Ibuprofen", Quantity: 150, ExpirationDate: "2026-12-15"})
	s.AddEquipment(portalapi.AddEquipmentRequest{Name: "MRI Scanner", MaintenanceDueDate: "2026-09-03"})
	s.AddEquipment(portalapi.AddEquipmentRequest{Name: "Defibrillator", MaintenanceDueDate: "2027-02-20"})
	s.AddConsumable(portalapi.AddConsumableRequest{Name: "Surgical Gloves", Quantity: 500, Status: "In Stock"})
}
