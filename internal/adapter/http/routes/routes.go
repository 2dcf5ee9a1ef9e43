package routes

import (
	"context"
	"fmt"
	"log"

	_ "quotesmith/docs" // swag generated
	"quotesmith/internal/adapter/http/handlers"
	"quotesmith/internal/adapter/persistence/repository"
	appconfig "quotesmith/internal/infrastructure/config"
	"quotesmith/internal/infrastructure/database"
	"quotesmith/internal/infrastructure/email"
	"quotesmith/internal/infrastructure/logger"
	"quotesmith/internal/infrastructure/payments"
	"quotesmith/internal/usecase"
	"quotesmith/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the full application and starts the HTTP server.
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zlog.Sync() }()

	router := gin.New()
	setMiddlewares(router, zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(context.Background(), router, cfg, zlog); err != nil {
		zlog.Fatal("failed to wire application", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	zlog.Info("starting http server", zap.String("addr", addr), zap.String("environment", cfg.App.Environment))
	if err := router.Run(addr); err != nil {
		zlog.Fatal("http server exited", zap.Error(err))
	}
}

func registerRoutes(ctx context.Context, router *gin.Engine, cfg *appconfig.Config, zlog *zap.Logger) error {
	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return fmt.Errorf("dynamodb client: %w", err)
	}

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb)

	var paramRepo interfaces.IParameterRepository = repository.NewParameterDynamoRepository(ddb)
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		paramRepo = repository.NewCachedParameterRepository(paramRepo, rdb, cfg.Redis.ParameterCacheTTL(), zlog)
		zlog.Info("parameter cache enabled", zap.String("address", cfg.Redis.Address))
	}

	var mailer interfaces.IQuoteMailer
	if cfg.AWS.SES.Enabled {
		sesMailer, err := email.NewSESMailer(ctx, cfg.AWS.Region, cfg.AWS.SES.FromEmail, zlog)
		if err != nil {
			return fmt.Errorf("ses mailer: %w", err)
		}
		mailer = sesMailer
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, zlog)
	if err != nil {
		zlog.Warn("payment gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, paramRepo, mailer, cfg.Pricing.IndustryDefaults(), zlog)
	parameterUseCase := usecase.NewParameterUseCase(paramRepo, zlog)
	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, quoteRepo, gateway, zlog)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	parameterHandler := handlers.NewParameterHandler(parameterUseCase)
	paymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, parameterHandler, paymentHandler)
	return nil
}

func setMiddlewares(router *gin.Engine, zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
