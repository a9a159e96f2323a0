package response

import (
	"time"

	"venuedesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DepositPaymentResponse struct {
	PaymentID string          `json:"payment_id"`
	ID        string          `json:"id"`
	BookingID string          `json:"booking_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`

	ProviderRaw string                 `json:"provider_raw,omitempty"`
	Provider    map[string]interface{} `json:"provider,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:   p.ID,
		ID:          p.ID,
		BookingID:   p.BookingID,
		Date:        p.Date,
		Amount:      p.Amount,
		Status:      string(p.Status),
		ProviderRaw: string(p.ProviderRaw),
		Provider:    p.Provider,
	}
}
