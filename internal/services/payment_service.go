// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/rrtraders/rr-backend/internal/config"
	"github.com/rrtraders/rr-backend/internal/models"
)

// PaymentService wraps the card gateway. UPI and COD orders never touch
// it; card orders get a PaymentIntent whose client secret is handed
// back with the created order.
type PaymentService struct {
	db     *gorm.DB
	config *config.Config
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
}

func NewPaymentService(db *gorm.DB, config *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = config.Payment.StripeSecretKey

	return &PaymentService{
		db:     db,
		config: config,
	}
}

func (s *PaymentService) CreatePaymentIntent(orderID uuid.UUID, amount float64, currency string) (*PaymentIntentResponse, error) {
	if s.config.Payment.StripeSecretKey == "" {
		return nil, errors.New("card payments are not configured")
	}

	if currency == "" {
		currency = s.config.Payment.Currency
	}

	// Stripe wants the amount in the smallest currency unit
	amountMinor := int64(amount * 100)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("order_id", orderID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}

type ConfirmPaymentRequest struct {
	OrderID         string `json:"order_id" validate:"required,uuid4"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

// ConfirmPayment reconciles a card order with its gateway status and
// moves a Pending order to Confirmed on success.
func (s *PaymentService) ConfirmPayment(req *ConfirmPaymentRequest) error {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return errors.New("invalid order ID")
	}

	pi, err := paymentintent.Get(req.PaymentIntentID, nil)
	if err != nil {
		return fmt.Errorf("failed to get payment intent: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return fmt.Errorf("order not found: %w", err)
	}

	if order.PaymentMode != models.PaymentModeCard {
		return errors.New("order is not a card payment")
	}
	if order.PaymentRef != "" && order.PaymentRef != pi.ID {
		return errors.New("payment intent does not belong to this order")
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		order.Status = models.OrderStatusConfirmed
		order.PaymentRef = pi.ID
	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		order.Status = models.OrderStatusPending
	default:
		order.Status = models.OrderStatusCancelled
	}

	if err := s.db.Save(&order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}
