package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound  = errors.New("deposit payment not found")
	ErrInvalidPaymentBookingID = errors.New("invalid booking_id")
	ErrInvalidProviderPayload  = errors.New("invalid payment provider payload")
	ErrBookingNotConfirmed     = errors.New("booking not confirmed")
	ErrNoDepositDue            = errors.New("booking has no deposit due")
	ErrGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrGatewayUnauthorized     = errors.New("payment gateway unauthorized")
)

// IDepositPaymentUseCase collects a booking's deposit through the payment
// provider and records the outcome.
//
// The charge amount always comes from the stored booking, never from the
// caller payload.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, bookingID string, payload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo        interfaces.IDepositPaymentRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, bookingRepo interfaces.IBookingRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, bookingRepo: bookingRepo, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, bookingID string, payload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_booking_id=%q payload_len=%d", bookingID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentBookingID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload booking_id=%s", bookingID)
			return entities.DepositPayment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading booking booking_id=%s err=%v", bookingID, err)
		return entities.DepositPayment{}, err
	}
	if booking.ID == "" {
		return entities.DepositPayment{}, ErrBookingNotFound
	}
	if booking.Status != entities.BookingStatusConfirmed {
		log.Printf("[payment][usecase] booking not confirmed booking_id=%s status=%s", bookingID, booking.Status)
		return entities.DepositPayment{}, ErrBookingNotConfirmed
	}
	if !booking.DepositValue.IsPositive() {
		return entities.DepositPayment{}, ErrNoDepositDue
	}

	// Link the charge to the booking and pin the amount to the stored
	// deposit. external_reference helps the provider reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = bookingID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Booking deposit %s", bookingID)
		}
		reqMap["transaction_amount"] = booking.DepositValue.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway booking_id=%s", bookingID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		mockResp := map[string]any{}
		_ = json.Unmarshal(payload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed booking_id=%s err=%v", bookingID, err)
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed booking_id=%s err=%v", bookingID, err)
	}

	p := entities.DepositPayment{
		ID:          providerPaymentID,
		BookingID:   bookingID,
		Date:        time.Now().UTC(),
		Amount:      booking.DepositValue,
		Status:      entities.PaymentStatusApproved,
		ProviderRaw: providerResp,
		Provider:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed booking_id=%s payment_id=%s err=%v", bookingID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success booking_id=%s payment_id=%s status=%s", bookingID, created.ID, created.Status)
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidPaymentBookingID
	}
	return u.repo.ListByBookingID(ctx, bookingID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
