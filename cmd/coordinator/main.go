package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/harlanda/taxiway/internal/pkg/config"
	"github.com/harlanda/taxiway/internal/pkg/database"
	"github.com/harlanda/taxiway/internal/pkg/health"
	"github.com/harlanda/taxiway/internal/pkg/logger"
	"github.com/harlanda/taxiway/internal/pkg/middleware"
	"github.com/harlanda/taxiway/internal/pkg/nsq"
	detectionGateway "github.com/harlanda/taxiway/services/detection/gateway"
	detectionHandler "github.com/harlanda/taxiway/services/detection/handler"
	detectionRepository "github.com/harlanda/taxiway/services/detection/repository"
	detectionUsecase "github.com/harlanda/taxiway/services/detection/usecase"
	instructionGateway "github.com/harlanda/taxiway/services/instruction/gateway"
	instructionHandler "github.com/harlanda/taxiway/services/instruction/handler"
	instructionRepository "github.com/harlanda/taxiway/services/instruction/repository"
	instructionUsecase "github.com/harlanda/taxiway/services/instruction/usecase"
	matchGateway "github.com/harlanda/taxiway/services/match/gateway"
	matchHandler "github.com/harlanda/taxiway/services/match/handler"
	matchRepository "github.com/harlanda/taxiway/services/match/repository"
	matchUsecase "github.com/harlanda/taxiway/services/match/usecase"
)

func main() {
	appName := "pickup-coordinator"
	configPath := "config/coordinator.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		log.Fatalf("Failed to connect to NSQ: %v", err)
	}
	defer producer.Stop()

	// Initialize repositories
	matchRepo := matchRepository.NewMatchRepository(configs, postgresClient.GetDB(), redisClient)
	instructionRepo := instructionRepository.NewInstructionRepository(postgresClient.GetDB())
	detectionRepo := detectionRepository.NewDetectionRepository(postgresClient.GetDB())

	// Initialize gateways
	matchGW := matchGateway.NewMatchGW(producer)
	instructionGW := instructionGateway.NewInstructionGW(producer)
	mlGW := detectionGateway.NewMLGateway(configs)

	// Initialize usecases
	matchUC := matchUsecase.NewMatchUC(configs, matchRepo, matchGW)
	instructionUC := instructionUsecase.NewInstructionUC(configs, instructionRepo, instructionGW)
	detectionUC := detectionUsecase.NewDetectionUC(configs, detectionRepo, mlGW)

	// Initialize handlers
	matchH := matchHandler.NewHandler(matchUC)
	instructionH := instructionHandler.NewHandler(instructionUC)
	detectionH := detectionHandler.NewHandler(detectionUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	matchH.RegisterRoutes(e)
	instructionH.RegisterRoutes(e)
	detectionH.RegisterRoutes(e)

	// Start server
	logger.Info("Starting server",
		logger.String("service", appName),
		logger.Int("port", configs.Server.Port))
	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
