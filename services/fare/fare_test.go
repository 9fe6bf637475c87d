package fare

import (
	"testing"

	"swiftcab/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteStandard(t *testing.T) {
	svc := &DefaultFareService{}

	quote, err := svc.Quote(models.FareRequest{Pickup: "Delhi", Dropoff: "Jaipur"})
	require.NoError(t, err)

	assert.Equal(t, models.VehicleStandard, quote.VehicleClass)
	assert.Equal(t, 281.0, quote.DistanceKM)
	assert.Equal(t, 100.0+281*12, quote.Total)
	assert.Equal(t, "INR", quote.Currency)
}

func TestQuoteByVehicleClass(t *testing.T) {
	svc := &DefaultFareService{}

	premium, err := svc.Quote(models.FareRequest{
		Pickup: "Delhi", Dropoff: "Jaipur", VehicleClass: models.VehiclePremium,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0+281*18, premium.Total)

	van, err := svc.Quote(models.FareRequest{
		Pickup: "Delhi", Dropoff: "Agra", VehicleClass: models.VehicleVan,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0+233*16, van.Total)
}

func TestQuoteNightSurcharge(t *testing.T) {
	svc := &DefaultFareService{}

	quote, err := svc.Quote(models.FareRequest{
		Pickup: "Delhi", Dropoff: "Jaipur", Night: true,
	})
	require.NoError(t, err)
	assert.Equal(t, (100.0+281*12)*1.25, quote.Total)
}

func TestQuoteRouteIsUnordered(t *testing.T) {
	svc := &DefaultFareService{}

	a, err := svc.Quote(models.FareRequest{Pickup: "Delhi", Dropoff: "Jaipur"})
	require.NoError(t, err)
	b, err := svc.Quote(models.FareRequest{Pickup: "jaipur", Dropoff: "DELHI"})
	require.NoError(t, err)
	assert.Equal(t, a.Total, b.Total)
}

func TestQuoteUnknownRoute(t *testing.T) {
	svc := &DefaultFareService{}

	_, err := svc.Quote(models.FareRequest{Pickup: "Delhi", Dropoff: "Mumbai"})
	assert.Error(t, err)
}
