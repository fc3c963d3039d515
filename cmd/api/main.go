package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/leadcapture-backend/api/routes"
	"github.com/ArowuTest/leadcapture-backend/internal/config"
	"github.com/ArowuTest/leadcapture-backend/internal/handlers"
	"github.com/ArowuTest/leadcapture-backend/internal/services"
	mongorepo "github.com/ArowuTest/leadcapture-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/leadcapture-backend/pkg/logger"
	mongodb "github.com/ArowuTest/leadcapture-backend/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, mongodb.Options{
		ServerSelectionTimeout: cfg.MongoDB.ConnectTimeout,
		PingRetries:            cfg.MongoDB.ConnectRetries,
		Logger:                 logger.Log,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Log.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	logger.Log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB.Database))

	db := mongoClient.Database(cfg.MongoDB.Database)

	leadRepo := mongorepo.NewLeadRepository(db)
	companyRepo := mongorepo.NewCompanyRepository(db)
	if err := leadRepo.EnsureIndexes(ctx); err != nil {
		logger.Log.Warn("Failed to ensure lead indexes", zap.Error(err))
	}
	if err := companyRepo.EnsureIndexes(ctx); err != nil {
		logger.Log.Warn("Failed to ensure company indexes", zap.Error(err))
	}

	leadService := services.NewLeadService(leadRepo, loc)
	campaignService := services.NewCampaignService(companyRepo)

	handlerDeps := routes.HandlerDependencies{
		LeadHandler:     handlers.NewLeadHandler(leadService, loc),
		CampaignHandler: handlers.NewCampaignHandler(campaignService),
		HealthHandler:   handlers.NewHealthHandler(mongoClient),
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log.Info("Server starting", zap.String("port", cfg.Server.Port), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
