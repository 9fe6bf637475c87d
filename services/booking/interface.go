package booking

import (
	"context"

	bookingRepo "swiftcab/database/repository/booking"
	"swiftcab/models"
	"swiftcab/services/fare"
	"swiftcab/services/tasks"

	"go.uber.org/zap"
)

// BookingService is the CRUD and submission surface for cab bookings.
// Its Submit method is the narrow booking-submission interface the voice
// dialogue manager confirms into.
type BookingService interface {
	Create(ctx context.Context, input models.BookingInput, source string) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id, paymentID string) error
	LinkPayment(ctx context.Context, id, paymentID string) error
	Submit(ctx context.Context, intent models.BookingIntent) (string, error)
}

// DefaultBookingService implements BookingService over the Mongo repository,
// with an optional read-through cache for lookups.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Cache    BookingCache
	FareSvc  fare.Service
	Reminder *tasks.ReminderScheduler
	Logger   *zap.Logger
}
