package fare

import (
	"strings"

	"swiftcab/models"
)

// Service computes fare quotes for interstate routes.
type Service interface {
	Quote(req models.FareRequest) (*models.FareQuote, error)
}

const (
	baseFare       = 100.0
	minimumFare    = 500.0
	nightSurcharge = 1.25
	currency       = "INR"
)

// Per-kilometre rates by vehicle class.
var perKMRate = map[models.VehicleClass]float64{
	models.VehicleStandard: 12.0,
	models.VehiclePremium:  18.0,
	models.VehicleVan:      16.0,
}

// Curated intercity distance table, keyed by unordered city pair.
var routeDistances = map[string]float64{
	routeKey("Delhi", "Jaipur"):      281,
	routeKey("Delhi", "Agra"):        233,
	routeKey("Delhi", "Chandigarh"):  243,
	routeKey("Delhi", "Lucknow"):     555,
	routeKey("Jaipur", "Agra"):       240,
	routeKey("Jaipur", "Chandigarh"): 510,
	routeKey("Agra", "Lucknow"):      335,
	routeKey("Chandigarh", "Lucknow"): 742,
}

func routeKey(a, b string) string {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// DefaultFareService implements Service over the static route table.
type DefaultFareService struct{}

// Quote computes base fare plus distance at the class rate, applies the
// night surcharge when requested, and never quotes below the minimum fare.
func (s *DefaultFareService) Quote(req models.FareRequest) (*models.FareQuote, error) {
	distance, ok := routeDistances[routeKey(req.Pickup, req.Dropoff)]
	if !ok {
		return nil, NewUnknownRouteError(req.Pickup, req.Dropoff)
	}

	class := req.VehicleClass
	if class == "" {
		class = models.VehicleStandard
	}
	rate, ok := perKMRate[class]
	if !ok {
		rate = perKMRate[models.VehicleStandard]
	}

	total := baseFare + distance*rate
	if req.Night {
		total *= nightSurcharge
	}
	if total < minimumFare {
		total = minimumFare
	}

	return &models.FareQuote{
		Pickup:       req.Pickup,
		Dropoff:      req.Dropoff,
		VehicleClass: class,
		DistanceKM:   distance,
		BaseFare:     baseFare,
		Total:        total,
		Currency:     currency,
	}, nil
}
