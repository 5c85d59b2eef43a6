package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/chauffeur/internal/pkg/config"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/health"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	natspkg "github.com/piresc/chauffeur/internal/pkg/nats"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
	"github.com/piresc/chauffeur/internal/pkg/server"
	wspkg "github.com/piresc/chauffeur/internal/pkg/websocket"
	"github.com/piresc/chauffeur/services/booking/gateway"
	natsgw "github.com/piresc/chauffeur/services/booking/gateway/nats"
	"github.com/piresc/chauffeur/services/booking/gateway/routing"
	"github.com/piresc/chauffeur/services/booking/handler"
	"github.com/piresc/chauffeur/services/booking/repository"
	"github.com/piresc/chauffeur/services/booking/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "booking-service"
	configPath := "config/booking.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Initialize repositories
	draftRepo := repository.NewDraftRepository(redisClient)
	routeCacheRepo := repository.NewRouteCacheRepository(redisClient)
	submissionRepo := repository.NewSubmissionRepository(postgresClient.GetDB())

	schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := submissionRepo.EnsureSchema(schemaCtx); err != nil {
		zapLogger.Fatal("Failed to prepare submission log", zap.Error(err))
	}
	cancel()

	// Initialize gateways
	backendGW := gateway.NewBackendGW(configs.Backend)
	placesGW := gateway.NewPlacesGW(configs.Places)
	routeGW := routing.NewRouteGW(configs.Routing, routeCacheRepo)
	eventGW := natsgw.NewNATSGateway(natsClient)

	// Sessions push their updates to connected websocket clients
	manager := wspkg.NewManager()

	// Initialize UseCase
	bookingUC, err := usecase.NewBookingUC(
		configs,
		draftRepo,
		submissionRepo,
		backendGW,
		placesGW,
		routeGW,
		eventGW,
		manager,
	)
	if err != nil {
		zapLogger.Fatal("Failed to initialize booking usecase", zap.Error(err))
	}

	// Initialize handlers
	h := handler.NewHandler(bookingUC, manager)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares
	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(echomw.RequestID())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e,
		middleware.RequestContext(),
		middleware.RateLimiter(middleware.RateLimiterConfig{
			RedisClient: redisClient.Client,
			Key:         appName,
			Limit:       120,
			Period:      time.Minute,
		}),
	)

	// Release sessions nobody has touched within the session TTL
	evictCtx, stopEviction := context.WithCancel(context.Background())
	go bookingUC.RunEviction(evictCtx, time.Minute)

	srv := server.NewGracefulServer(e, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.Register("booking-sessions", func(context.Context) error {
		stopEviction()
		bookingUC.Shutdown()
		return nil
	})
	srv.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	srv.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	if nrApp != nil {
		srv.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
