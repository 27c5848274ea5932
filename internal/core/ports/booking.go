package ports

import (
	"context"

	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
)

// BookingService defines the reservation business logic.
type BookingService interface {
	// CreateBooking validates the request before any network call,
	// proxies to the upstream booking service and sends a confirmation
	// email. Email failure never fails the booking.
	CreateBooking(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error)
	GetBooking(ctx context.Context, id string) (*booking.Booking, error)
	ListGuestBookings(ctx context.Context, guestEmail string) ([]booking.Booking, error)
	CancelBooking(ctx context.Context, id string) (*booking.Booking, error)
}
