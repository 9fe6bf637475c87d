package models

// FareRequest is the payload for a fare quote.
type FareRequest struct {
	Pickup       string       `json:"pickup" binding:"required"`
	Dropoff      string       `json:"dropoff" binding:"required"`
	VehicleClass VehicleClass `json:"vehicleClass"`
	Night        bool         `json:"night"`
}

// FareQuote is the computed price for a route and vehicle class.
type FareQuote struct {
	Pickup       string       `json:"pickup"`
	Dropoff      string       `json:"dropoff"`
	VehicleClass VehicleClass `json:"vehicleClass"`
	DistanceKM   float64      `json:"distanceKm"`
	BaseFare     float64      `json:"baseFare"`
	Total        float64      `json:"total"`
	Currency     string       `json:"currency"`
}
