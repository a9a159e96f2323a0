package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the deposit payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDeclined PaymentStatus = "declined"
)

// DepositPayment records a deposit collected for a booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// Provider payload:
//   - ProviderRaw keeps the original response body (JSON) for audit.
//   - Provider is an optional parsed representation, useful for debugging.
type DepositPayment struct {
	ID        string          `json:"id"`
	BookingID string          `json:"booking_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`

	ProviderRaw json.RawMessage        `json:"provider_raw,omitempty"`
	Provider    map[string]interface{} `json:"provider,omitempty"`
}
