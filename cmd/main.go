package main

import (
	"context"
	"log"

	"umrah-service/config"
	adminhandler "umrah-service/internal/module/admin/handler"
	adminrepositories "umrah-service/internal/module/admin/repositories"
	adminusecases "umrah-service/internal/module/admin/usecases"
	orderhandler "umrah-service/internal/module/order/handler"
	orderrepositories "umrah-service/internal/module/order/repositories"
	orderusecases "umrah-service/internal/module/order/usecases"
	packagehandler "umrah-service/internal/module/package/handler"
	packagerepositories "umrah-service/internal/module/package/repositories"
	packageusecases "umrah-service/internal/module/package/usecases"
	reviewhandler "umrah-service/internal/module/review/handler"
	reviewrepositories "umrah-service/internal/module/review/repositories"
	reviewusecases "umrah-service/internal/module/review/usecases"
	userhandler "umrah-service/internal/module/user/handler"
	userrepositories "umrah-service/internal/module/user/repositories"
	userusecases "umrah-service/internal/module/user/usecases"
	"umrah-service/internal/pkg/database"
	"umrah-service/internal/pkg/http"
	"umrah-service/internal/pkg/httpclient"
	"umrah-service/internal/pkg/jwt"
	log_internal "umrah-service/internal/pkg/log"
	"umrah-service/internal/pkg/messagestream"
	"umrah-service/internal/pkg/middleware"
	redis_internal "umrah-service/internal/pkg/redis"
	"umrah-service/internal/pkg/scheduler"
	router "umrah-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			err := r.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	if err := database.Migrate(db, &cfg.Database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	// init redis
	redis := redis_internal.SetupClient(&cfg.Redis)
	rs := redis_internal.SetupRedsync(redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := scheduler.Scheduler{Log: logger}
	schedulerClient := sched.InitClient(&cfg.Redis)
	schedulerInspector := sched.InitInspector(&cfg.Redis)

	jwtMaker := jwt.NewMaker(&cfg.JWT)

	userRepo := userrepositories.New(db, logger)
	userUsecase := userusecases.New(userRepo, logger, jwtMaker)

	packageRepo := packagerepositories.New(db, logger, redis)
	packageUsecase := packageusecases.New(packageRepo, logger)

	orderRepo := orderrepositories.New(db, logger, httpClient, redis, rs, schedulerClient, schedulerInspector, &cfg.PaymentGateway, &cfg.DocumentExtraction)
	orderUsecase := orderusecases.New(orderRepo, logger, publisher)

	adminRepo := adminrepositories.New(db, logger)
	adminUsecase := adminusecases.New(adminRepo, logger)

	reviewRepo := reviewrepositories.New(db, logger)
	reviewUsecase := reviewusecases.New(reviewRepo, logger)

	m := middleware.Middleware{
		Log:      logZap,
		JwtMaker: jwtMaker,
	}

	v := validator.New()
	userHandler := userhandler.UserHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   userUsecase,
		UploadDir: cfg.Upload.BaseDir,
	}
	packageHandler := packagehandler.PackageHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   packageUsecase,
	}
	orderHandler := orderhandler.OrderHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   orderUsecase,
		Publish:   publisher,
		UploadDir: cfg.Upload.BaseDir,
	}
	adminHandler := adminhandler.AdminHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   adminUsecase,
	}
	reviewHandler := reviewhandler.ReviewHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   reviewUsecase,
	}

	var messageRouters []*message.Router

	consumeOrderQueueRouter, err := messagestream.NewRouter(publisher, "book_order_poisoned", "book_order_handler", orderusecases.TopicBookOrder, subscriber, orderHandler.ConsumeOrderQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_order_queue router", err)
	}

	messageRouters = append(messageRouters, consumeOrderQueueRouter)

	// scheduled task handlers
	go sched.StartHandler(
		&cfg.Redis,
		[]string{scheduler.TypeSetPaymentExpired, scheduler.TypeSweepExpiredSubscription},
		[]func(ctx context.Context, t *asynq.Task) error{
			orderHandler.SetPaymentExpired,
			adminHandler.SweepExpiredSubscriptions,
		},
	)

	// hourly subscription sweep
	go sched.StartPeriodic(&cfg.Redis, "@every 1h", scheduler.TypeSweepExpiredSubscription)

	// task queue monitoring ui
	go sched.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &userHandler, &packageHandler, &orderHandler, &adminHandler, &reviewHandler, &m)

	return r, messageRouters
}
