package portalapi

import (
	"context"
	"net/url"
)

// BillingReports returns every settled payment line.
func (c *Client) BillingReports(ctx context.Context) ([]BillingReport, error) {
	return fetchList[BillingReport](ctx, c, "/get_billing", nil)
}

// OutstandingBalance returns a patient's unpaid total.
func (c *Client) OutstandingBalance(ctx context.Context, patientID string) (int, error) {
	q := url.Values{}
	q.Set("patient_id", patientID)

	var resp struct {
		OutstandingBalance int `json:"outstanding_balance"`
	}
	if err := c.getJSON(ctx, "/get_outstanding_balance", q, &resp); err != nil {
		return 0, err
	}
	return resp.OutstandingBalance, nil
}

// SettlePaymentsRequest clears a patient's outstanding balance.
// PaymentType must be "Cash" or "Insurance", capitalized; the backend
// rejects other spellings.
type SettlePaymentsRequest struct {
	PatientID   string `json:"patient_id"`
	PaymentType string `json:"payment_type"`
	DatePaid    string `json:"date_paid"` // YYYY-MM-DD
}

func (c *Client) SettlePayments(ctx context.Context, req SettlePaymentsRequest) (string, error) {
	return c.submitPOST(ctx, "/settle_payments", req)
}

// UpdateInsurance sets or replaces a patient's insurance provider.
func (c *Client) UpdateInsurance(ctx context.Context, patientID, provider string) (string, error) {
	q := url.Values{}
	q.Set("patient_id", patientID)
	q.Set("insurance_provider", provider)
	return c.submitGET(ctx, "/update_insurance", q)
}
