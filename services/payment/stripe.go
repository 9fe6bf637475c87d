package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"swiftcab/config"
	"swiftcab/models"
	"swiftcab/services/booking"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// Service is the payment-gateway glue: it creates payment intents for
// bookings and applies gateway webhook events back onto them.
type Service interface {
	CreateIntent(ctx context.Context, bookingID string) (*models.PaymentIntentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

// StripeService implements Service against Stripe.
type StripeService struct {
	Bookings booking.BookingService
	Logger   *zap.Logger
}

// CreateIntent creates a Stripe payment intent for the booking's quoted
// fare and links the intent to the booking.
func (s *StripeService) CreateIntent(ctx context.Context, bookingID string) (*models.PaymentIntentResponse, error) {
	bk, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bk.FareAmount <= 0 {
		return nil, errors.New("booking has no fare amount to charge")
	}
	if bk.Status == models.BookingStatusPaid {
		return nil, errors.New("booking is already paid")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(bk.FareAmount * 100)),
		Currency: stripe.String("inr"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", bk.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.Bookings.LinkPayment(ctx, bk.ID, pi.ID); err != nil {
		s.Logger.Warn("failed to link payment to booking",
			zap.String("booking", bk.ID), zap.String("payment", pi.ID), zap.Error(err))
	}

	return &models.PaymentIntentResponse{
		BookingID:    bk.ID,
		PaymentID:    pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       bk.FareAmount,
		Currency:     bk.Currency,
	}, nil
}

// HandleWebhook verifies the Stripe signature and applies the event.
func (s *StripeService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("failed to parse payment intent: %w", err)
		}
		bookingID := pi.Metadata["booking_id"]
		if bookingID == "" {
			return errors.New("payment intent missing booking_id metadata")
		}
		if err := s.Bookings.MarkPaid(ctx, bookingID, pi.ID); err != nil {
			return fmt.Errorf("failed to mark booking paid: %w", err)
		}
		s.Logger.Info("booking paid",
			zap.String("booking", bookingID), zap.String("payment", pi.ID))

	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("failed to parse payment intent: %w", err)
		}
		s.Logger.Warn("payment failed",
			zap.String("booking", pi.Metadata["booking_id"]), zap.String("payment", pi.ID))

	default:
		s.Logger.Debug("ignoring webhook event", zap.String("type", string(event.Type)))
	}
	return nil
}
