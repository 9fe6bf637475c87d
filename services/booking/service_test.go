package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"swiftcab/models"
	"swiftcab/services/fare"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRepo struct {
	bookings map[string]models.Booking
	getCalls int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{bookings: make(map[string]models.Booking)}
}

func (r *memoryRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	id := uuid.New().String()
	booking.ID = id
	r.bookings[id] = booking
	return id, nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.getCalls++
	bk, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &bk, nil
}

func (r *memoryRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if filter.Status != "" && bk.Status != filter.Status {
			continue
		}
		if filter.CustomerPhone != "" && bk.CustomerPhone != filter.CustomerPhone {
			continue
		}
		out = append(out, bk)
	}
	return out, nil
}

func (r *memoryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	bk, ok := r.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	bk.Status = status
	r.bookings[id] = bk
	return nil
}

func (r *memoryRepo) SetPaymentID(ctx context.Context, id, paymentID string) error {
	bk, ok := r.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	bk.PaymentID = paymentID
	r.bookings[id] = bk
	return nil
}

func (r *memoryRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return errors.New("not found")
	}
	delete(r.bookings, id)
	return nil
}

func (r *memoryRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultBookingService, *memoryRepo) {
	repo := newMemoryRepo()
	return &DefaultBookingService{
		Repo:    repo,
		FareSvc: &fare.DefaultFareService{},
		Logger:  zap.NewNop(),
	}, repo
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newTestService()

	bk, err := svc.Create(context.Background(), models.BookingInput{
		Pickup:  "Delhi",
		Dropoff: "Jaipur",
	}, "form")
	require.NoError(t, err)

	assert.NotEmpty(t, bk.ID)
	assert.Equal(t, models.BookingStatusConfirmed, bk.Status)
	assert.Equal(t, models.VehicleStandard, bk.VehicleClass)
	assert.Equal(t, "form", bk.Source)
	// Known route gets an upfront quote.
	assert.Equal(t, 100.0+281*12, bk.FareAmount)
	assert.Equal(t, "INR", bk.Currency)
}

func TestCreateBookingUnknownRouteStillBooks(t *testing.T) {
	svc, _ := newTestService()

	bk, err := svc.Create(context.Background(), models.BookingInput{
		Pickup:  "Home",
		Dropoff: "Airport",
	}, "voice")
	require.NoError(t, err)
	assert.NotEmpty(t, bk.ID)
	assert.Zero(t, bk.FareAmount)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.BookingInput{Dropoff: "Jaipur"}, "form")
	assert.Error(t, err)

	_, err = svc.Create(ctx, models.BookingInput{Pickup: "Delhi", Dropoff: "Delhi"}, "form")
	assert.Error(t, err)
}

func TestCancelAndDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	bk, err := svc.Create(ctx, models.BookingInput{Pickup: "Delhi", Dropoff: "Agra"}, "form")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, bk.ID))
	got, err := svc.Get(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)

	require.NoError(t, svc.Delete(ctx, bk.ID))
	assert.Empty(t, repo.bookings)

	assert.Error(t, svc.Cancel(ctx, "missing"))
}

func TestMarkPaid(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	bk, err := svc.Create(ctx, models.BookingInput{Pickup: "Delhi", Dropoff: "Agra"}, "form")
	require.NoError(t, err)

	require.NoError(t, svc.MarkPaid(ctx, bk.ID, "pi_123"))
	got, err := svc.Get(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaid, got.Status)
	assert.Equal(t, "pi_123", got.PaymentID)
}

type memoryCache struct {
	entries map[string]*models.Booking
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*models.Booking)}
}

func (c *memoryCache) Get(ctx context.Context, id string) (*models.Booking, bool) {
	bk, ok := c.entries[id]
	return bk, ok
}

func (c *memoryCache) Set(ctx context.Context, booking *models.Booking) {
	c.entries[booking.ID] = booking
}

func (c *memoryCache) Invalidate(ctx context.Context, id string) {
	delete(c.entries, id)
}

func TestGetReadsThroughCache(t *testing.T) {
	svc, repo := newTestService()
	cache := newMemoryCache()
	svc.Cache = cache
	ctx := context.Background()

	bk, err := svc.Create(ctx, models.BookingInput{Pickup: "Delhi", Dropoff: "Agra"}, "form")
	require.NoError(t, err)

	// First lookup misses the cache, hits the repo and primes the cache.
	_, err = svc.Get(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)

	// Second lookup is served from the cache.
	got, err := svc.Get(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
	assert.Equal(t, bk.ID, got.ID)
}

func TestWritesInvalidateCache(t *testing.T) {
	svc, repo := newTestService()
	cache := newMemoryCache()
	svc.Cache = cache
	ctx := context.Background()

	bk, err := svc.Create(ctx, models.BookingInput{Pickup: "Delhi", Dropoff: "Agra"}, "form")
	require.NoError(t, err)
	_, err = svc.Get(ctx, bk.ID)
	require.NoError(t, err)
	require.Equal(t, 1, repo.getCalls)

	// Cancelling drops the cached entry; a stale status must never be served.
	require.NoError(t, svc.Cancel(ctx, bk.ID))
	got, err := svc.Get(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)

	require.NoError(t, svc.MarkPaid(ctx, bk.ID, "pi_9"))
	_, ok := cache.Get(ctx, bk.ID)
	assert.False(t, ok)
}

func TestSubmitFromVoiceIntent(t *testing.T) {
	svc, _ := newTestService()

	when := time.Now().Add(24 * time.Hour)
	id, err := svc.Submit(context.Background(), models.BookingIntent{
		Pickup:        "Home",
		Dropoff:       "Airport",
		VehicleClass:  models.VehicleVan,
		ScheduledTime: &when,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "voice", got.Source)
	assert.Equal(t, models.VehicleVan, got.VehicleClass)
	assert.Equal(t, "Home", got.Pickup)
}
