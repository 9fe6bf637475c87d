package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed interstate cab booking record.
type Booking struct {
	ID            string       `bson:"id" json:"id"`
	Pickup        string       `bson:"pickup" json:"pickup"`
	Dropoff       string       `bson:"dropoff" json:"dropoff"`
	VehicleClass  VehicleClass `bson:"vehicle_class" json:"vehicleClass"`
	ScheduledTime *time.Time   `bson:"scheduled_time,omitempty" json:"scheduledTime,omitempty"`
	CustomerName  string       `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	CustomerPhone string       `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	FareAmount    float64      `bson:"fare_amount,omitempty" json:"fareAmount,omitempty"`
	Currency      string       `bson:"currency,omitempty" json:"currency,omitempty"`
	Status        string       `bson:"status" json:"status"`
	PaymentID     string       `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Source        string       `bson:"source" json:"source"` // "form" or "voice"
	CreatedAt     time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updated_at" json:"updatedAt"`
}

// BookingInput is the payload accepted by the booking form endpoint.
type BookingInput struct {
	Pickup        string       `json:"pickup" binding:"required"`
	Dropoff       string       `json:"dropoff" binding:"required"`
	VehicleClass  VehicleClass `json:"vehicleClass"`
	ScheduledTime *time.Time   `json:"scheduledTime"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	Status        string
	CustomerPhone string
	Limit         int64
}
