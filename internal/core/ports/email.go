package ports

import (
	"context"

	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
)

// EmailService defines outbound transactional email.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, b *booking.Booking) error
}
