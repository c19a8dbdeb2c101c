package config

import (
	"chama-service/src/internal/delivery/http"
	"chama-service/src/internal/delivery/http/middleware"
	"chama-service/src/internal/delivery/http/route"
	"chama-service/src/internal/gateway/messaging"
	"chama-service/src/internal/repository"
	"chama-service/src/internal/usecase"
	"chama-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "chama-service/src/pkg/kafka/confluent"
	"chama-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkgConfluent.Producer
	Redis    redis.UniversalClient
	Async    *asynq.ServeMux
}

const (
	TypeSweepStuckPayments = "payments:sweep-stuck"
)

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	transactionRepository := repository.NewTransactionRepository(config.DB)
	walletRepository := repository.NewWalletRepository(config.DB)
	notificationRepository := repository.NewNotificationRepository(config.DB)
	feeRepository := repository.NewPlatformFeeRepository(config.DB)
	groupRepository := repository.NewGroupRepository(config.DB)
	userRepository := repository.NewUserRepository(config.DB)
	paymentProducer := messaging.NewPaymentProducer(config.Producer, config.Log)

	// setup use cases
	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		transactionRepository,
		walletRepository,
		notificationRepository,
		feeRepository,
		config.Config,
		paymentProducer,
	)

	walletUseCase := usecase.NewWalletUseCase(
		config.Log,
		config.Validate,
		walletRepository,
		transactionRepository,
		notificationRepository,
		config.Config,
	)

	groupUseCase := usecase.NewGroupUseCase(
		config.Log,
		config.Validate,
		groupRepository,
		userRepository,
	)

	reconcilerUseCase := usecase.NewReconcilerUseCase(
		config.Log,
		transactionRepository,
		paymentUseCase,
		config.Config,
		config.Redis,
	)

	// setup controllers
	webhookController := http.NewWebhookController(paymentUseCase, config.Config, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)
	walletController := http.NewWalletController(walletUseCase, config.Log)
	groupController := http.NewGroupController(groupUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	config.Async.HandleFunc(TypeSweepStuckPayments, reconcilerUseCase.SweepStuckPayments)

	routeConfig := route.RouteConfig{
		App:               config.App,
		WebhookController: webhookController,
		PaymentController: paymentController,
		WalletController:  walletController,
		GroupController:   groupController,
		AuthMiddleware:    authMiddleware,
	}
	routeConfig.Setup()
}
