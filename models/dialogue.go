package models

import "time"

// VehicleClass identifies the class of cab requested.
type VehicleClass string

const (
	VehicleStandard VehicleClass = "standard"
	VehiclePremium  VehicleClass = "premium"
	VehicleVan      VehicleClass = "van"
)

// BookingIntent is the accumulating target of a voice conversation.
// Pickup and Dropoff are empty strings until resolved.
type BookingIntent struct {
	Pickup        string       `json:"pickup,omitempty"`
	Dropoff       string       `json:"dropoff,omitempty"`
	VehicleClass  VehicleClass `json:"vehicleClass,omitempty"`
	ScheduledTime *time.Time   `json:"scheduledTime,omitempty"`
}

// Class returns the vehicle class, defaulting to standard when never mentioned.
func (i BookingIntent) Class() VehicleClass {
	if i.VehicleClass == "" {
		return VehicleStandard
	}
	return i.VehicleClass
}

// MissingSlots lists the required slots that are still unfilled,
// in the order they should be asked for.
func (i BookingIntent) MissingSlots() []string {
	var missing []string
	if i.Dropoff == "" {
		missing = append(missing, "dropoff")
	}
	if i.Pickup == "" {
		missing = append(missing, "pickup")
	}
	return missing
}

// Complete reports whether the intent is eligible for confirmation.
// An intent with identical pickup and dropoff is never complete.
func (i BookingIntent) Complete() bool {
	return i.Pickup != "" && i.Dropoff != "" && i.Pickup != i.Dropoff
}

// TurnRole identifies who produced a turn.
type TurnRole string

const (
	TurnUser   TurnRole = "user"
	TurnSystem TurnRole = "system"
)

// Turn is one entry in the append-only conversation log.
// Turns are immutable once appended.
type Turn struct {
	Role      TurnRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
