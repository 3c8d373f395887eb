package portalapi

import "context"

// ListMedications returns the medication inventory.
func (c *Client) ListMedications(ctx context.Context) ([]Medication, error) {
	return fetchList[Medication](ctx, c, "/get_medications", nil)
}

// ListEquipment returns the equipment inventory.
func (c *Client) ListEquipment(ctx context.Context) ([]Equipment, error) {
	return fetchList[Equipment](ctx, c, "/get_equipment", nil)
}

// ListConsumables returns the consumable inventory.
func (c *Client) ListConsumables(ctx context.Context) ([]Consumable, error) {
	return fetchList[Consumable](ctx, c, "/get_consumables", nil)
}

// AddMedicationRequest adds a medication row to the inventory.
type AddMedicationRequest struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	ExpirationDate string `json:"expiration_date"`
}

func (c *Client) AddMedication(ctx context.Context, req AddMedicationRequest) (string, error) {
	return c.submitPOST(ctx, "/add_medication", req)
}

// AddEquipmentRequest adds an equipment row.
type AddEquipmentRequest struct {
	Name               string `json:"name"`
	MaintenanceDueDate string `json:"maintenance_due_date"`
}

func (c *Client) AddEquipment(ctx context.Context, req AddEquipmentRequest) (string, error) {
	return c.submitPOST(ctx, "/add_equipment", req)
}

// AddConsumableRequest adds a consumable row. The admin form always
// submits status "In Stock".
type AddConsumableRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

func (c *Client) AddConsumable(ctx context.Context, req AddConsumableRequest) (string, error) {
	return c.submitPOST(ctx, "/add_consumable", req)
}
