package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/requestcache"
)

// Bookings are volatile; cache them only briefly to absorb bursts.
const bookingTTL = time.Minute

type BookingService struct {
	client   ports.BookingClient
	cache    ports.Cache
	email    ports.EmailService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewBookingService(client ports.BookingClient, cache ports.Cache, email ports.EmailService, logger *logrus.Logger) ports.BookingService {
	return &BookingService{
		client:   client,
		cache:    cache,
		email:    email,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateBooking validates the request before touching the network, then
// proxies it upstream. A confirmation email is attempted afterwards but
// a failed send never fails the booking.
func (s *BookingService) CreateBooking(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid booking request: %w", err)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return nil, fmt.Errorf("check-out must be after check-in")
	}
	if req.CheckIn.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("check-in date cannot be in the past")
	}

	created, err := s.client.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	invalidateSilently(s.cache, ctx, "bookings")

	if s.email != nil {
		if err := s.email.SendBookingConfirmation(ctx, created); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"booking_id":  created.ID,
				"guest_email": created.GuestEmail,
			}).Warn("Failed to send booking confirmation email")
		}
	}
	return created, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*booking.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("booking id is required")
	}
	key := requestcache.Key(http.MethodGet, "bookings/"+id, nil)
	b, err := loadThroughCache(s.cache, ctx, "booking", key, bookingTTL, func() (booking.Booking, error) {
		got, err := s.client.Get(ctx, id)
		if err != nil {
			return booking.Booking{}, err
		}
		return *got, nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookingService) ListGuestBookings(ctx context.Context, guestEmail string) ([]booking.Booking, error) {
	if guestEmail == "" {
		return nil, fmt.Errorf("guest email is required")
	}
	key := requestcache.Key(http.MethodGet, "bookings", map[string]any{"guest_email": guestEmail})
	return loadThroughCache(s.cache, ctx, "booking", key, bookingTTL, func() ([]booking.Booking, error) {
		return s.client.ListByGuest(ctx, guestEmail)
	})
}

func (s *BookingService) CancelBooking(ctx context.Context, id string) (*booking.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("booking id is required")
	}
	cancelled, err := s.client.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}
	invalidateSilently(s.cache, ctx, "bookings")
	return cancelled, nil
}
