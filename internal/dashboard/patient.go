package dashboard

import (
	"context"
	"time"

	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

// Patient owns the snapshots behind the patient screens: appointments,
// medical history, prescriptions, and billing.
type Patient struct {
	client *portalapi.Client
	logger *logging.Logger

	Identity portalapi.LoggedInPatient

	Appointments  []portalapi.Appointment
	Records       []portalapi.MedicalRecord
	Prescriptions []portalapi.Prescription
	Balance       int
}

// NewPatient creates the dashboard state for a logged-in patient.
func NewPatient(client *portalapi.Client, identity portalapi.LoggedInPatient, logger *logging.Logger) *Patient {
	if logger == nil {
		logger = logging.Default()
	}
	return &Patient{client: client, logger: logger, Identity: identity}
}

// RefreshAll loads every patient collection.
func (p *Patient) RefreshAll(ctx context.Context) {
	p.RefreshAppointments(ctx)
	p.RefreshRecords(ctx)
	p.RefreshPrescriptions(ctx)
	p.RefreshBalance(ctx)
}

func (p *Patient) RefreshAppointments(ctx context.Context) {
	appts, err := p.client.PatientAppointments(ctx, p.Identity.ID)
	if err != nil {
		p.logger.Debug("appointments fetch failed", "error", err)
		return
	}
	p.Appointments = appts
}

func (p *Patient) RefreshRecords(ctx context.Context) {
	records, err := p.client.PatientMedicalRecords(ctx, p.Identity.ID)
	if err != nil {
		p.logger.Debug("medical records fetch failed", "error", err)
		return
	}
	p.Records = records
}

func (p *Patient) RefreshPrescriptions(ctx context.Context) {
	prescriptions, err := p.client.PatientPrescriptions(ctx, p.Identity.ID)
	if err != nil {
		p.logger.Debug("prescriptions fetch failed", "error", err)
		return
	}
	p.Prescriptions = prescriptions
}

func (p *Patient) RefreshBalance(ctx context.Context) {
	balance, err := p.client.OutstandingBalance(ctx, p.Identity.ID)
	if err != nil {
		p.logger.Debug("balance fetch failed", "error", err)
		return
	}
	p.Balance = balance
}

// Upcoming returns appointments dated today or later.
func (p *Patient) Upcoming(today time.Time) []portalapi.Appointment {
	upcoming, _ := PartitionAppointments(p.Appointments, today)
	return upcoming
}

// Past returns appointments dated before today.
func (p *Patient) Past(today time.Time) []portalapi.Appointment {
	_, past := PartitionAppointments(p.Appointments, today)
	return past
}

// RequestEmergency submits the emergency form. All three fields are
// required. Success clears nothing server-side to re-fetch; the message
// is shown inline.
func (p *Patient) RequestEmergency(ctx context.Context, title, location, urgency string) (string, error) {
	if err := requireFields("title", title, "location", location, "urgency", urgency); err != nil {
		return "", err
	}
	return p.client.AddEmergency(ctx, p.Identity.Email, title, location, urgency)
}

// BookAppointment submits the booking form and re-fetches the
// appointment list on success.
func (p *Patient) BookAppointment(ctx context.Context, staffID, date, timeOfDay, reason, apptType string) error {
	if err := requireFields(
		"staff", staffID,
		"date", date,
		"time", timeOfDay,
		"reason", reason,
	); err != nil {
		return err
	}
	if _, err := p.client.AddAppointment(ctx, portalapi.AddAppointmentRequest{
		PatientID: p.Identity.ID,
		StaffID:   staffID,
		Date:      date,
		Time:      timeOfDay,
		Reason:    reason,
		Type:      apptType,
	}); err != nil {
		return err
	}
	p.RefreshAppointments(ctx)
	return nil
}

// SettlePayments pays the outstanding balance with "Cash" or "Insurance"
// and re-fetches appointments and balance so the billing screen updates.
func (p *Patient) SettlePayments(ctx context.Context, paymentType string) (string, error) {
	if err := requireFields("payment type", paymentType); err != nil {
		return "", err
	}
	msg, err := p.client.SettlePayments(ctx, portalapi.SettlePaymentsRequest{
		PatientID:   p.Identity.ID,
		PaymentType: paymentType,
		DatePaid:    time.Now().Format(dateLayout),
	})
	if err != nil {
		return "", err
	}
	p.RefreshAppointments(ctx)
	p.RefreshBalance(ctx)
	return msg, nil
}

// UpdateInsurance sets the insurance provider and mirrors it into the
// local identity so the pay-by-insurance button appears without a
// re-login.
func (p *Patient) UpdateInsurance(ctx context.Context, provider string) error {
	if err := requireFields("insurance provider", provider); err != nil {
		return err
	}
	if _, err := p.client.UpdateInsurance(ctx, p.Identity.ID, provider); err != nil {
		return err
	}
	p.Identity.InsuranceProvider = provider
	return nil
}
