package models

// ReminderPayload is the queued payload for a scheduled pickup reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Pickup    string `json:"pickup"`
	Dropoff   string `json:"dropoff"`
	FireDate  string `json:"fireDate"`
	Phone     string `json:"phone,omitempty"`
}
