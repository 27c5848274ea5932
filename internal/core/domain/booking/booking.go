package booking

import "time"

// Booking is a reservation record owned by the upstream booking service.
type Booking struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Guests       int       `json:"guests"`
	TotalPrice   float64   `json:"total_price"`
	Currency     string    `json:"currency"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// CreateRequest is the payload proxied to the upstream booking service.
// Required fields are validated before any network call is made.
type CreateRequest struct {
	PropertyID string    `json:"property_id" validate:"required"`
	GuestName  string    `json:"guest_name" validate:"required"`
	GuestEmail string    `json:"guest_email" validate:"required,email"`
	CheckIn    time.Time `json:"check_in" validate:"required"`
	CheckOut   time.Time `json:"check_out" validate:"required,gtfield=CheckIn"`
	Guests     int       `json:"guests" validate:"required,gt=0"`
}
