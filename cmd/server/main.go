package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/voyago/tourism-platform/go/configs"
	"github.com/voyago/tourism-platform/go/internal/application/services"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/db"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/email"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/health"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/httpserver"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/redis"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/repositories"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/requestcache"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting tourism gateway...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Initialize Redis client
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	logger.Info("Connected to Redis successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// One request cache per upstream resource family so a purge of one
	// never touches another.
	newCache := func(name string) ports.Cache {
		if cfg.Cache.UseRedis {
			return redis.NewRequestCache(redisClient, "reqcache:"+name)
		}
		mem := requestcache.NewMemory()
		go mem.Run(rootCtx, cfg.Cache.SweepInterval)
		return mem
	}
	propertyCache := newCache("property")
	poiCache := newCache("poi")
	bookingCache := newCache("booking")

	// Shared HTTP client for all upstream calls
	httpClient := &http.Client{}

	propertyClient := upstream.NewPropertyClient(cfg.Upstream.PropertyBaseURL, httpClient, cfg.Upstream.RequestTimeout, logger)
	poiClient := upstream.NewPOIClient(cfg.Upstream.POIBaseURL, httpClient, cfg.Upstream.RequestTimeout, logger)
	bookingClient := upstream.NewBookingClient(cfg.Upstream.BookingBaseURL, httpClient, cfg.Upstream.RequestTimeout, logger)
	chatClient := upstream.NewChatClient(cfg.Upstream.ChatBaseURL, httpClient, cfg.Upstream.RequestTimeout, logger)

	// Repositories
	analyticsRepo := repositories.NewAnalyticsRepository(database, logger)
	adminUserRepo := repositories.NewAdminUserRepository(database, logger)
	rateLimitRepo := repositories.NewRateLimitRedisRepository(redisClient)

	// Email service
	emailConfig := &email.EmailConfig{
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		CompanyName:    cfg.Email.CompanyName,
		BaseURL:        cfg.Email.BaseURL,
	}
	emailService, err := email.NewEmailService(emailConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service:", err)
	}

	// Services
	analyticsService := services.NewAnalyticsService(analyticsRepo, logger)
	propertyService := services.NewPropertyService(propertyClient, propertyCache, analyticsService, cfg.Cache.SearchTTL, cfg.Cache.DetailTTL, logger)
	poiService := services.NewPOIService(poiClient, poiCache, analyticsService, cfg.Cache.SearchTTL, cfg.Cache.DetailTTL, logger)
	bookingService := services.NewBookingService(bookingClient, bookingCache, emailService, logger)
	chatService := services.NewChatService(chatClient, logger)
	authService := services.NewAuthService(adminUserRepo, &cfg.JWT, logger)
	rateLimiterService := services.NewRateLimiterService(rateLimitRepo, &cfg.RateLimit, logger)

	hcSlice := []ports.HealthChecker{
		health.NewDBHealthChecker(database),
		health.NewRedisHealthChecker(redisClient),
		health.NewUpstreamHealthChecker("property-service", cfg.Upstream.PropertyBaseURL, httpClient),
		health.NewUpstreamHealthChecker("poi-service", cfg.Upstream.POIBaseURL, httpClient),
		health.NewUpstreamHealthChecker("booking-service", cfg.Upstream.BookingBaseURL, httpClient),
		health.NewUpstreamHealthChecker("chat-service", cfg.Upstream.ChatBaseURL, httpClient),
	}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	// Initialize HTTP server using ServerDeps for clearer wiring
	deps := httpserver.ServerDeps{
		PropertyService:    propertyService,
		POIService:         poiService,
		BookingService:     bookingService,
		ChatService:        chatService,
		AnalyticsService:   analyticsService,
		AuthService:        authService,
		RateLimiterService: rateLimiterService,
		Caches: map[string]ports.Cache{
			"property": propertyCache,
			"poi":      poiCache,
			"booking":  bookingCache,
		},
		HealthCheckers: hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
