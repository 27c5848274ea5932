package httpserver

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/ports"
	customMiddleware "github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type ServerDeps struct {
	PropertyService    ports.PropertyService
	POIService         ports.POIService
	BookingService     ports.BookingService
	ChatService        ports.ChatService
	AnalyticsService   ports.AnalyticsService
	AuthService        ports.AuthService
	RateLimiterService ports.RateLimiterService
	// Caches holds the request caches by name for the admin purge
	// endpoint.
	Caches         map[string]ports.Cache
	HealthCheckers []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	propertySvc    ports.PropertyService
	poiSvc         ports.POIService
	bookingSvc     ports.BookingService
	chatSvc        ports.ChatService
	analyticsSvc   ports.AnalyticsService
	authSvc        ports.AuthService
	caches         map[string]ports.Cache
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

// requestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		propertySvc:    deps.PropertyService,
		poiSvc:         deps.POIService,
		bookingSvc:     deps.BookingService,
		chatSvc:        deps.ChatService,
		analyticsSvc:   deps.AnalyticsService,
		authSvc:        deps.AuthService,
		caches:         deps.Caches,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			deps.RateLimiterService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
