package portalapi

import (
	"context"
	"net/url"
)

// PatientMedicalRecords returns the medical history of one patient.
func (c *Client) PatientMedicalRecords(ctx context.Context, patientID string) ([]MedicalRecord, error) {
	q := url.Values{}
	q.Set("patient_id", patientID)
	return fetchList[MedicalRecord](ctx, c, "/get_patient_medical_records", q)
}

// PatientPrescriptions returns the prescriptions of one patient.
func (c *Client) PatientPrescriptions(ctx context.Context, patientID string) ([]Prescription, error) {
	q := url.Values{}
	q.Set("patient_id", patientID)
	return fetchList[Prescription](ctx, c, "/get_patient_prescriptions", q)
}

// AddMedicalRecordRequest appends a clinical note to a patient's history.
type AddMedicalRecordRequest struct {
	PatientID   string `json:"patient_id"`
	StaffID     string `json:"staff_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c *Client) AddMedicalRecord(ctx context.Context, req AddMedicalRecordRequest) (string, error) {
	return c.submitPOST(ctx, "/add_medical_record", req)
}

// AddPrescriptionRequest appends a prescription for a patient.
type AddPrescriptionRequest struct {
	PatientID      string `json:"patient_id"`
	StaffID        string `json:"staff_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Instructions   string `json:"instructions"`
}

func (c *Client) AddPrescription(ctx context.Context, req AddPrescriptionRequest) (string, error) {
	return c.submitPOST(ctx, "/add_prescription", req)
}
