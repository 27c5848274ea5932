package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	config "github.com/voyago/tourism-platform/go/configs"
	"github.com/voyago/tourism-platform/go/internal/application/services"
	"github.com/voyago/tourism-platform/go/internal/core/domain/admin"
	"github.com/voyago/tourism-platform/go/internal/core/domain/poi"
	"github.com/voyago/tourism-platform/go/internal/core/domain/property"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/requestcache"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
	"github.com/voyago/tourism-platform/go/test/mocks"
)

func newTestServer(t *testing.T, deps httpserver.ServerDeps) *httpserver.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return httpserver.NewServer(&httpserver.ServerConfig{Host: "127.0.0.1", Port: "0"}, logger, deps)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSearchProperties_ReturnsEnvelope(t *testing.T) {
	client := &mocks.PropertyClientMock{
		SearchFn: func(ctx context.Context, params map[string]any) ([]property.Property, int, error) {
			return []property.Property{
				{ID: "p1", Name: "Harbour Loft", Category: "apartment", Rating: 4.7, Distance: "500m"},
				{ID: "p2", Name: "Old Town Villa", Category: "villa", Rating: 4.9, Distance: "2.5km"},
			}, 2, nil
		},
	}
	propertySvc := services.NewPropertyService(client, requestcache.NewMemory(), nil, time.Minute, time.Minute, logrus.New())
	srv := newTestServer(t, httpserver.ServerDeps{PropertyService: propertySvc})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?q=villa", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
}

func TestGetPOI_NotFoundMapsTo404(t *testing.T) {
	client := &mocks.POIClientMock{
		GetFn: func(ctx context.Context, id string) (*poi.POI, error) {
			return nil, &upstream.StatusError{Service: "poi", Status: http.StatusNotFound, Message: "poi not found"}
		},
	}
	poiSvc := services.NewPOIService(client, requestcache.NewMemory(), nil, time.Minute, time.Minute, logrus.New())
	srv := newTestServer(t, httpserver.ServerDeps{POIService: poiSvc})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pois/missing", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, false, body["success"])
}

func TestSendChatMessage_EmptyMessageRejected(t *testing.T) {
	chatSvc := services.NewChatService(&mocks.ChatClientMock{}, logrus.New())
	srv := newTestServer(t, httpserver.ServerDeps{ChatService: chatSvc})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{"message":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics/summary", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPurgeCache_AuthenticatedOperator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	operator := &admin.User{ID: uuid.New(), Email: "ops@example.com", PasswordHash: string(hash), IsActive: true}
	users := &mocks.AdminUserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*admin.User, error) { return operator, nil },
	}
	authSvc := services.NewAuthService(users, &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Minute}, logrus.New())

	login, err := authSvc.Login(context.Background(), &admin.LoginRequest{Email: operator.Email, Password: "hunter2"})
	require.NoError(t, err)

	flushed := false
	srv := newTestServer(t, httpserver.ServerDeps{
		AuthService: authSvc,
		Caches: map[string]ports.Cache{
			"property": &mocks.CacheMock{FlushFn: func(ctx context.Context) error {
				flushed = true
				return nil
			}},
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache?name=property", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, flushed)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache?name=bogus", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBooking_InvalidBodyRejected(t *testing.T) {
	bookingSvc := services.NewBookingService(&mocks.BookingClientMock{}, requestcache.NewMemory(), nil, logrus.New())
	srv := newTestServer(t, httpserver.ServerDeps{BookingService: bookingSvc})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"property_id":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
