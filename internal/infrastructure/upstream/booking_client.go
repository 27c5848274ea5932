package upstream

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

// BookingClient implements ports.BookingClient over the upstream booking
// service.
type BookingClient struct {
	c *client
}

func NewBookingClient(baseURL string, httpClient *http.Client, timeout time.Duration, logger *logrus.Logger) *BookingClient {
	return &BookingClient{c: newClient("booking", baseURL, httpClient, timeout, logger)}
}

func (b *BookingClient) Create(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error) {
	var out booking.Booking
	if _, err := b.c.do(ctx, http.MethodPost, "/bookings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BookingClient) Get(ctx context.Context, id string) (*booking.Booking, error) {
	var out booking.Booking
	if _, err := b.c.do(ctx, http.MethodGet, "/bookings/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BookingClient) ListByGuest(ctx context.Context, guestEmail string) ([]booking.Booking, error) {
	q := url.Values{}
	q.Set("guest_email", guestEmail)
	items, _, err := getList[booking.Booking](ctx, b.c, "/bookings", q)
	return items, err
}

func (b *BookingClient) Cancel(ctx context.Context, id string) (*booking.Booking, error) {
	var out booking.Booking
	if _, err := b.c.do(ctx, http.MethodPost, "/bookings/"+id+"/cancel", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ ports.BookingClient = (*BookingClient)(nil)
