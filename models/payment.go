package models

// PaymentIntentRequest asks for a Stripe payment intent for a booking.
type PaymentIntentRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// PaymentIntentResponse carries the client secret back to the frontend.
type PaymentIntentResponse struct {
	BookingID    string  `json:"bookingId"`
	PaymentID    string  `json:"paymentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
