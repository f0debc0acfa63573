package routes

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "merchant_gateway/docs" // generated by swag init
	"merchant_gateway/internal/adapter/http/handlers"
	repository2 "merchant_gateway/internal/adapter/persistence/repository"
	"merchant_gateway/internal/config"
	"merchant_gateway/internal/infrastructure/database"
	"merchant_gateway/internal/infrastructure/httpclient"
	"merchant_gateway/internal/infrastructure/processors"
	"merchant_gateway/internal/usecase"
	"merchant_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/exp/slog"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)
	logger := newLogger(cfg.Server.GinMode)

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(router, cfg, logger); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	logger.Info("[server] listening", slog.String("port", cfg.Server.Port), slog.String("store", cfg.Store.Backend))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(router *gin.Engine, cfg *config.Config, logger *slog.Logger) error {
	repo, err := newMerchantRepository(context.Background(), cfg)
	if err != nil {
		return err
	}

	client := httpclient.New(cfg.HTTP.Timeout)
	factory := processors.NewFactory(client, logger)
	logger.Info("[server] processors registered", slog.Any("processors", processors.Names()))

	merchantGatewayUseCase := usecase.NewMerchantGatewayUseCase(repo, factory, logger)

	merchantHandler := handlers.NewMerchantHandler(merchantGatewayUseCase, logger)
	gatewayHandler := handlers.NewGatewayHandler(merchantGatewayUseCase, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMerchantRoutes(v1, merchantHandler, gatewayHandler)
	return nil
}

func newMerchantRepository(ctx context.Context, cfg *config.Config) (interfaces.IMerchantRepository, error) {
	switch cfg.Store.Backend {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		return repository2.NewMerchantDynamoRepository(ddb, cfg.Store.MerchantsTable), nil
	case config.StoreBolt:
		db, err := database.OpenBolt(cfg.Store.BoltPath)
		if err != nil {
			return nil, err
		}
		return repository2.NewMerchantBoltRepository(db)
	case config.StorePostgres:
		db, err := database.OpenPostgres(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		repo := repository2.NewMerchantPostgresRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown merchant store %q", cfg.Store.Backend)
}

func newLogger(ginMode string) *slog.Logger {
	level := slog.LevelInfo
	if ginMode == gin.DebugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.HandlerOptions{Level: level}.NewTextHandler(os.Stdout))
	slog.SetDefault(logger)
	return logger
}

func setMiddlewares(router *gin.Engine, logger *slog.Logger) {
	router.Use(gin.Logger())
	router.Use(handlers.RequestIDMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[server] recovered from panic", slog.Any("panic", recovered), slog.String("request_id", c.GetString(handlers.RequestIDKey)))
		c.AbortWithStatus(500)
	}))
}
