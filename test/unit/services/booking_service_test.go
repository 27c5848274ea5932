package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/voyago/tourism-platform/go/internal/application/services"
	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/requestcache"
	"github.com/voyago/tourism-platform/go/test/mocks"
)

func validBookingRequest() *booking.CreateRequest {
	checkIn := time.Now().AddDate(0, 0, 7)
	return &booking.CreateRequest{
		PropertyID: "p1",
		GuestName:  "Ada Martin",
		GuestEmail: "ada@example.com",
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
	}
}

func TestCreateBooking_ValidationHappensBeforeUpstream(t *testing.T) {
	upstreamCalled := false
	client := &mocks.BookingClientMock{
		CreateFn: func(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error) {
			upstreamCalled = true
			return &booking.Booking{ID: "b1"}, nil
		},
	}
	svc := impl.NewBookingService(client, requestcache.NewMemory(), &mocks.EmailServiceMock{}, logrus.New())

	req := validBookingRequest()
	req.GuestEmail = "not-an-email"

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	require.False(t, upstreamCalled, "invalid request must never reach the upstream service")
}

func TestCreateBooking_CheckOutMustFollowCheckIn(t *testing.T) {
	svc := impl.NewBookingService(&mocks.BookingClientMock{}, requestcache.NewMemory(), nil, logrus.New())

	req := validBookingRequest()
	req.CheckOut = req.CheckIn.AddDate(0, 0, -1)

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
}

func TestCreateBooking_EmailFailureDoesNotFailBooking(t *testing.T) {
	client := &mocks.BookingClientMock{
		CreateFn: func(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error) {
			return &booking.Booking{ID: "b1", GuestEmail: req.GuestEmail, Status: booking.StatusConfirmed}, nil
		},
	}
	email := &mocks.EmailServiceMock{
		SendBookingConfirmationFn: func(ctx context.Context, b *booking.Booking) error {
			return fmt.Errorf("sendgrid unavailable")
		},
	}
	svc := impl.NewBookingService(client, requestcache.NewMemory(), email, logrus.New())

	created, err := svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	require.Equal(t, "b1", created.ID)
}

func TestCreateBooking_SendsConfirmation(t *testing.T) {
	client := &mocks.BookingClientMock{
		CreateFn: func(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error) {
			return &booking.Booking{ID: "b2", GuestEmail: req.GuestEmail}, nil
		},
	}
	var sentTo string
	email := &mocks.EmailServiceMock{
		SendBookingConfirmationFn: func(ctx context.Context, b *booking.Booking) error {
			sentTo = b.GuestEmail
			return nil
		},
	}
	svc := impl.NewBookingService(client, requestcache.NewMemory(), email, logrus.New())

	_, err := svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", sentTo)
}

func TestCancelBooking_RequiresID(t *testing.T) {
	svc := impl.NewBookingService(&mocks.BookingClientMock{}, requestcache.NewMemory(), nil, logrus.New())

	_, err := svc.CancelBooking(context.Background(), "")
	require.Error(t, err)
}

func TestCancelBooking_ProxiesUpstream(t *testing.T) {
	client := &mocks.BookingClientMock{
		CancelFn: func(ctx context.Context, id string) (*booking.Booking, error) {
			return &booking.Booking{ID: id, Status: booking.StatusCancelled}, nil
		},
	}
	svc := impl.NewBookingService(client, requestcache.NewMemory(), nil, logrus.New())

	cancelled, err := svc.CancelBooking(context.Background(), "b9")
	require.NoError(t, err)
	require.Equal(t, booking.StatusCancelled, cancelled.Status)
}
