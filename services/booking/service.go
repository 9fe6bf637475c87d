package booking

import (
	"context"
	"fmt"
	"time"

	"swiftcab/models"

	"go.uber.org/zap"
)

// How long before a scheduled pickup the reminder fires.
const reminderLead = 30 * time.Minute

// Create validates and stores a new booking, attaching a fare quote when the
// route is known and scheduling a pickup reminder for scheduled rides.
func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingInput, source string) (*models.Booking, error) {
	if input.Pickup == "" || input.Dropoff == "" {
		return nil, NewValidationError("pickup and dropoff are required")
	}
	if input.Pickup == input.Dropoff {
		return nil, NewValidationError("pickup and dropoff cannot be the same place")
	}

	class := input.VehicleClass
	if class == "" {
		class = models.VehicleStandard
	}

	booking := models.Booking{
		Pickup:        input.Pickup,
		Dropoff:       input.Dropoff,
		VehicleClass:  class,
		ScheduledTime: input.ScheduledTime,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Status:        models.BookingStatusConfirmed,
		Source:        source,
	}

	// A missing route just means no upfront quote; the booking still stands.
	if s.FareSvc != nil {
		quote, err := s.FareSvc.Quote(models.FareRequest{
			Pickup:       input.Pickup,
			Dropoff:      input.Dropoff,
			VehicleClass: class,
		})
		if err == nil {
			booking.FareAmount = quote.Total
			booking.Currency = quote.Currency
		}
	}

	id, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = id

	if s.Reminder != nil && input.ScheduledTime != nil {
		fireAt := input.ScheduledTime.Add(-reminderLead)
		if fireAt.After(time.Now()) {
			payload := models.ReminderPayload{
				BookingID: id,
				Pickup:    booking.Pickup,
				Dropoff:   booking.Dropoff,
				FireDate:  input.ScheduledTime.Format(time.RFC3339),
				Phone:     booking.CustomerPhone,
			}
			if err := s.Reminder.Schedule(payload, fireAt); err != nil {
				s.Logger.Warn("failed to schedule pickup reminder",
					zap.String("booking", id), zap.Error(err))
			}
		}
	}

	s.Logger.Info("booking created",
		zap.String("booking", id),
		zap.String("source", source),
		zap.String("pickup", booking.Pickup),
		zap.String("dropoff", booking.Dropoff),
	)
	return &booking, nil
}

// Get returns one booking by ID, serving from the cache when possible.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	if s.Cache != nil {
		if booking, ok := s.Cache.Get(ctx, id); ok {
			return booking, nil
		}
	}
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, NewNotFoundError(id)
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, booking)
	}
	return booking, nil
}

// List fetches bookings matching the filter.
func (s *DefaultBookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.Repo.List(ctx, filter)
}

// Cancel marks a booking cancelled.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return NewNotFoundError(id)
	}
	s.invalidate(ctx, id)
	return nil
}

// Delete removes a booking record entirely. Admin only.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return NewNotFoundError(id)
	}
	s.invalidate(ctx, id)
	return nil
}

// MarkPaid records a successful payment against a booking.
func (s *DefaultBookingService) MarkPaid(ctx context.Context, id, paymentID string) error {
	if err := s.Repo.SetPaymentID(ctx, id, paymentID); err != nil {
		return NewNotFoundError(id)
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusPaid); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// LinkPayment attaches a pending payment gateway ID without changing status.
func (s *DefaultBookingService) LinkPayment(ctx context.Context, id, paymentID string) error {
	if err := s.Repo.SetPaymentID(ctx, id, paymentID); err != nil {
		return NewNotFoundError(id)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *DefaultBookingService) invalidate(ctx context.Context, id string) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, id)
	}
}

// Submit converts a completed voice booking intent into a booking record.
// This is the only entry point the dialogue manager uses.
func (s *DefaultBookingService) Submit(ctx context.Context, intent models.BookingIntent) (string, error) {
	booking, err := s.Create(ctx, models.BookingInput{
		Pickup:        intent.Pickup,
		Dropoff:       intent.Dropoff,
		VehicleClass:  intent.Class(),
		ScheduledTime: intent.ScheduledTime,
	}, "voice")
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}
