package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/tourism-platform/go/internal/core/domain/admin"
	"github.com/voyago/tourism-platform/go/internal/core/domain/analytics"
	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
	"github.com/voyago/tourism-platform/go/internal/core/domain/chat"
	"github.com/voyago/tourism-platform/go/internal/core/domain/poi"
	"github.com/voyago/tourism-platform/go/internal/core/domain/property"
)

// CacheMock is a lightweight mock for ports.Cache
type CacheMock struct {
	GetFn          func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn          func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn       func(ctx context.Context, key string) error
	DeletePrefixFn func(ctx context.Context, prefix string) error
	FlushFn        func(ctx context.Context) error
}

func (m *CacheMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, false, nil
}
func (m *CacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}
	return nil
}
func (m *CacheMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}
func (m *CacheMock) DeletePrefix(ctx context.Context, prefix string) error {
	if m.DeletePrefixFn != nil {
		return m.DeletePrefixFn(ctx, prefix)
	}
	return nil
}
func (m *CacheMock) Flush(ctx context.Context) error {
	if m.FlushFn != nil {
		return m.FlushFn(ctx)
	}
	return nil
}

// PropertyClientMock is a lightweight mock for ports.PropertyClient
type PropertyClientMock struct {
	SearchFn func(ctx context.Context, params map[string]any) ([]property.Property, int, error)
	GetFn    func(ctx context.Context, id string) (*property.Property, error)
	CreateFn func(ctx context.Context, req *property.CreateRequest) (*property.Property, error)
	UpdateFn func(ctx context.Context, id string, req *property.UpdateRequest) (*property.Property, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (m *PropertyClientMock) Search(ctx context.Context, params map[string]any) ([]property.Property, int, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, params)
	}
	return nil, 0, nil
}
func (m *PropertyClientMock) Get(ctx context.Context, id string) (*property.Property, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *PropertyClientMock) Create(ctx context.Context, req *property.CreateRequest) (*property.Property, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *PropertyClientMock) Update(ctx context.Context, id string, req *property.UpdateRequest) (*property.Property, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *PropertyClientMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// POIClientMock is a lightweight mock for ports.POIClient
type POIClientMock struct {
	ListFn       func(ctx context.Context, params map[string]any) ([]poi.POI, int, error)
	GetFn        func(ctx context.Context, id string) (*poi.POI, error)
	CategoriesFn func(ctx context.Context) ([]poi.Category, error)
}

func (m *POIClientMock) List(ctx context.Context, params map[string]any) ([]poi.POI, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, 0, nil
}
func (m *POIClientMock) Get(ctx context.Context, id string) (*poi.POI, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *POIClientMock) Categories(ctx context.Context) ([]poi.Category, error) {
	if m.CategoriesFn != nil {
		return m.CategoriesFn(ctx)
	}
	return nil, nil
}

// BookingClientMock is a lightweight mock for ports.BookingClient
type BookingClientMock struct {
	CreateFn      func(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error)
	GetFn         func(ctx context.Context, id string) (*booking.Booking, error)
	ListByGuestFn func(ctx context.Context, guestEmail string) ([]booking.Booking, error)
	CancelFn      func(ctx context.Context, id string) (*booking.Booking, error)
}

func (m *BookingClientMock) Create(ctx context.Context, req *booking.CreateRequest) (*booking.Booking, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *BookingClientMock) Get(ctx context.Context, id string) (*booking.Booking, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *BookingClientMock) ListByGuest(ctx context.Context, guestEmail string) ([]booking.Booking, error) {
	if m.ListByGuestFn != nil {
		return m.ListByGuestFn(ctx, guestEmail)
	}
	return nil, nil
}
func (m *BookingClientMock) Cancel(ctx context.Context, id string) (*booking.Booking, error) {
	if m.CancelFn != nil {
		return m.CancelFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

// ChatClientMock is a lightweight mock for ports.ChatClient
type ChatClientMock struct {
	SendFn func(ctx context.Context, req *chat.MessageRequest) (*chat.MessageResponse, error)
}

func (m *ChatClientMock) Send(ctx context.Context, req *chat.MessageRequest) (*chat.MessageResponse, error) {
	if m.SendFn != nil {
		return m.SendFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}

// AnalyticsRepositoryMock is a lightweight mock for ports.AnalyticsRepository
type AnalyticsRepositoryMock struct {
	CreateFn        func(ctx context.Context, event *analytics.SearchEvent) error
	ListFn          func(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, error)
	CountFn         func(ctx context.Context, filter *analytics.EventFilter) (int, error)
	TopQueriesFn    func(ctx context.Context, filter *analytics.EventFilter, limit int) ([]analytics.QueryCount, error)
	SumExclusionsFn func(ctx context.Context, filter *analytics.EventFilter) (int, int, error)
}

func (m *AnalyticsRepositoryMock) Create(ctx context.Context, event *analytics.SearchEvent) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, event)
	}
	return nil
}
func (m *AnalyticsRepositoryMock) List(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return nil, nil
}
func (m *AnalyticsRepositoryMock) Count(ctx context.Context, filter *analytics.EventFilter) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}
	return 0, nil
}
func (m *AnalyticsRepositoryMock) TopQueries(ctx context.Context, filter *analytics.EventFilter, limit int) ([]analytics.QueryCount, error) {
	if m.TopQueriesFn != nil {
		return m.TopQueriesFn(ctx, filter, limit)
	}
	return nil, nil
}
func (m *AnalyticsRepositoryMock) SumExclusions(ctx context.Context, filter *analytics.EventFilter) (int, int, error) {
	if m.SumExclusionsFn != nil {
		return m.SumExclusionsFn(ctx, filter)
	}
	return 0, 0, nil
}

// AnalyticsServiceMock is a lightweight mock for ports.AnalyticsService
type AnalyticsServiceMock struct {
	RecordSearchFn func(ctx context.Context, event *analytics.SearchEvent)
	GetEventsFn    func(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, int, error)
	GetSummaryFn   func(ctx context.Context, filter *analytics.EventFilter) (*analytics.Summary, error)
}

func (m *AnalyticsServiceMock) RecordSearch(ctx context.Context, event *analytics.SearchEvent) {
	if m.RecordSearchFn != nil {
		m.RecordSearchFn(ctx, event)
	}
}
func (m *AnalyticsServiceMock) GetEvents(ctx context.Context, filter *analytics.EventFilter) ([]*analytics.SearchEvent, int, error) {
	if m.GetEventsFn != nil {
		return m.GetEventsFn(ctx, filter)
	}
	return nil, 0, nil
}
func (m *AnalyticsServiceMock) GetSummary(ctx context.Context, filter *analytics.EventFilter) (*analytics.Summary, error) {
	if m.GetSummaryFn != nil {
		return m.GetSummaryFn(ctx, filter)
	}
	return &analytics.Summary{}, nil
}

// AdminUserRepositoryMock is a lightweight mock for ports.AdminUserRepository
type AdminUserRepositoryMock struct {
	CreateFn     func(ctx context.Context, u *admin.User) error
	GetByEmailFn func(ctx context.Context, email string) (*admin.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*admin.User, error)
}

func (m *AdminUserRepositoryMock) Create(ctx context.Context, u *admin.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *AdminUserRepositoryMock) GetByEmail(ctx context.Context, email string) (*admin.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, fmt.Errorf("not found")
}
func (m *AdminUserRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*admin.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

// EmailServiceMock is a lightweight mock for ports.EmailService
type EmailServiceMock struct {
	SendBookingConfirmationFn func(ctx context.Context, b *booking.Booking) error
}

func (m *EmailServiceMock) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	if m.SendBookingConfirmationFn != nil {
		return m.SendBookingConfirmationFn(ctx, b)
	}
	return nil
}

// RateLimitRepositoryMock is a lightweight mock for ports.RateLimitRepository
type RateLimitRepositoryMock struct {
	IncrementWindowFn func(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error)
}

func (m *RateLimitRepositoryMock) IncrementWindow(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	if m.IncrementWindowFn != nil {
		return m.IncrementWindowFn(ctx, clientKey, window, keyPrefix, ttl)
	}
	return 1, time.Now().Truncate(window), nil
}
