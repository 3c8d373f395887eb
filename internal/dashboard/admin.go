package dashboard

import (
	"context"

	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

// Admin owns the snapshots behind the admin screens: user management,
// emergency dispatch, staff scheduling, resource management, and billing
// reports.
type Admin struct {
	client *portalapi.Client
	logger *logging.Logger

	Patients    []portalapi.Patient
	Staff       []portalapi.MedicalStaff
	Emergencies []portalapi.EmergencyRequest
	Medications []portalapi.Medication
	Equipment   []portalapi.Equipment
	Consumables []portalapi.Consumable
	Billing     []portalapi.BillingReport
}

// NewAdmin creates the admin dashboard state.
func NewAdmin(client *portalapi.Client, logger *logging.Logger) *Admin {
	if logger == nil {
		logger = logging.Default()
	}
	return &Admin{client: client, logger: logger}
}

// RefreshAll loads every admin collection. Each fetch is independent; one
// failing never blocks another.
func (a *Admin) RefreshAll(ctx context.Context) {
	a.RefreshPatients(ctx)
	a.RefreshStaff(ctx)
	a.RefreshEmergencies(ctx)
	a.RefreshMedications(ctx)
	a.RefreshEquipment(ctx)
	a.RefreshConsumables(ctx)
	a.RefreshBilling(ctx)
}

func (a *Admin) RefreshPatients(ctx context.Context) {
	patients, err := a.client.ListPatients(ctx)
	if err != nil {
		a.logger.Debug("patients fetch failed", "error", err)
		return
	}
	a.Patients = patients
}

func (a *Admin) RefreshStaff(ctx context.Context) {
	staff, err := a.client.ListStaff(ctx)
	if err != nil {
		a.logger.Debug("staff fetch failed", "error", err)
		return
	}
	a.Staff = staff
}

func (a *Admin) RefreshEmergencies(ctx context.Context) {
	emergencies, err := a.client.ListEmergencies(ctx)
	if err != nil {
		a.logger.Debug("emergencies fetch failed", "error", err)
		return
	}
	a.Emergencies = emergencies
}

func (a *Admin) RefreshMedications(ctx context.Context) {
	medications, err := a.client.ListMedications(ctx)
	if err != nil {
		a.logger.Debug("medications fetch failed", "error", err)
		return
	}
	a.Medications = medications
}

func (a *Admin) RefreshEquipment(ctx context.Context) {
	equipment, err := a.client.ListEquipment(ctx)
	if err != nil {
		a.logger.Debug("equipment fetch failed", "error", err)
		return
	}
	a.Equipment = equipment
}

func (a *Admin) RefreshConsumables(ctx context.Context) {
	consumables, err := a.client.ListConsumables(ctx)
	if err != nil {
		a.logger.Debug("consumables fetch failed", "error", err)
		return
	}
	a.Consumables = consumables
}

func (a *Admin) RefreshBilling(ctx context.Context) {
	billing, err := a.client.BillingReports(ctx)
	if err != nil {
		a.logger.Debug("billing fetch failed", "error", err)
		return
	}
	a.Billing = billing
}

// AddStaffForm is the add-medical-staff sheet.
type AddStaffForm struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Password       string
	Department     string
	Role           string
	Specialization string
}

// SubmitStaff registers a staff member and refreshes the roster on
// success. A *portalapi.ConflictError means the email is taken; the form
// stays open.
func (a *Admin) SubmitStaff(ctx context.Context, form AddStaffForm) error {
	if err := requireFields(
		"first name", form.FirstName,
		"last name", form.LastName,
		"email", form.Email,
		"password", form.Password,
	); err != nil {
		return err
	}
	err := a.client.AddStaff(ctx, portalapi.AddStaffParams{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		Phone:          form.Phone,
		Password:       form.Password,
		Department:     form.Department,
		Role:           form.Role,
		Specialization: form.Specialization,
	})
	if err != nil {
		return err
	}
	a.RefreshStaff(ctx)
	return nil
}

// UpdateEmergencyStatus submits the dispatch status sheet and re-fetches
// the emergency list on success.
func (a *Admin) UpdateEmergencyStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return &ValidationError{Message: "please enter a status"}
	}
	if _, err := a.client.SetEmergencyStatus(ctx, id, status); err != nil {
		return err
	}
	a.RefreshEmergencies(ctx)
	return nil
}

// AssignStaffDay marks a staff member available on a weekday and
// refreshes the roster so the scheduling screen re-renders.
func (a *Admin) AssignStaffDay(ctx context.Context, email, day string) error {
	if _, err := a.client.AssignStaffDay(ctx, email, day); err != nil {
		return err
	}
	a.RefreshStaff(ctx)
	return nil
}

// UnassignStaffDay clears a weekday assignment and refreshes the roster.
func (a *Admin) UnassignStaffDay(ctx context.Context, email, day string) error {
	if _, err := a.client.UnassignStaffDay(ctx, email, day); err != nil {
		return err
	}
	a.RefreshStaff(ctx)
	return nil
}

// SubmitMedication validates the add-medication form (quantity arrives as
// the raw text field value) and refreshes the medication list on success.
func (a *Admin) SubmitMedication(ctx context.Context, name, quantity, expirationDate string) error {
	if err := requireFields("name", name, "expiration date", expirationDate); err != nil {
		return err
	}
	qty, err := parseQuantity(quantity)
	if err != nil {
		return err
	}
	if _, err := a.client.AddMedication(ctx, portalapi.AddMedicationRequest{
		Name:           name,
		Quantity:       qty,
		ExpirationDate: expirationDate,
	}); err != nil {
		return err
	}
	a.RefreshMedications(ctx)
	return nil
}

// SubmitEquipment validates the add-equipment form and refreshes the
// equipment list on success.
func (a *Admin) SubmitEquipment(ctx context.Context, name, maintenanceDueDate string) error {
	if err := requireFields("name", name, "maintenance due date", maintenanceDueDate); err != nil {
		return err
	}
	if _, err := a.client.AddEquipment(ctx, portalapi.AddEquipmentRequest{
		Name:               name,
		MaintenanceDueDate: maintenanceDueDate,
	}); err != nil {
		return err
	}
	a.RefreshEquipment(ctx)
	return nil
}

// SubmitConsumable validates the add-consumable form and refreshes the
// consumable list on success. The form always submits status "In Stock".
func (a *Admin) SubmitConsumable(ctx context.Context, name, quantity string) error {
	if err := requireFields("name", name); err != nil {
		return err
	}
	qty, err := parseQuantity(quantity)
	if err != nil {
		return err
	}
	if _, err := a.client.AddConsumable(ctx, portalapi.AddConsumableRequest{
		Name:     name,
		Quantity: qty,
		Status:   "In Stock",
	}); err != nil {
		return err
	}
	a.RefreshConsumables(ctx)
	return nil
}
