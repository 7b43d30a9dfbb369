package poolledger

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/alert"
	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	balanceHandler "github.com/msmkdenis/yap-poolledger/internal/balance/handler"
	balanceRepository "github.com/msmkdenis/yap-poolledger/internal/balance/repository"
	balanceService "github.com/msmkdenis/yap-poolledger/internal/balance/service"
	"github.com/msmkdenis/yap-poolledger/internal/config"
	db "github.com/msmkdenis/yap-poolledger/internal/database"
	depositHandler "github.com/msmkdenis/yap-poolledger/internal/deposit/handler"
	depositRepository "github.com/msmkdenis/yap-poolledger/internal/deposit/repository"
	depositService "github.com/msmkdenis/yap-poolledger/internal/deposit/service"
	"github.com/msmkdenis/yap-poolledger/internal/gateway"
	ledgerRepository "github.com/msmkdenis/yap-poolledger/internal/ledger/repository"
	ledgerService "github.com/msmkdenis/yap-poolledger/internal/ledger/service"
	"github.com/msmkdenis/yap-poolledger/internal/logger"
	"github.com/msmkdenis/yap-poolledger/internal/metrics"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
	payoutHandler "github.com/msmkdenis/yap-poolledger/internal/payout/handler"
	payoutRepository "github.com/msmkdenis/yap-poolledger/internal/payout/repository"
	payoutService "github.com/msmkdenis/yap-poolledger/internal/payout/service"
	poolHandler "github.com/msmkdenis/yap-poolledger/internal/pool/handler"
	poolRepository "github.com/msmkdenis/yap-poolledger/internal/pool/repository"
	poolService "github.com/msmkdenis/yap-poolledger/internal/pool/service"
	purchaseHandler "github.com/msmkdenis/yap-poolledger/internal/purchase/handler"
	purchaseService "github.com/msmkdenis/yap-poolledger/internal/purchase/service"
	reconciliationHandler "github.com/msmkdenis/yap-poolledger/internal/reconciliation/handler"
	reconciliationService "github.com/msmkdenis/yap-poolledger/internal/reconciliation/service"
	"github.com/msmkdenis/yap-poolledger/internal/scheduler"
	userHandler "github.com/msmkdenis/yap-poolledger/internal/user/handler"
	userRepository "github.com/msmkdenis/yap-poolledger/internal/user/repository"
	userService "github.com/msmkdenis/yap-poolledger/internal/user/service"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

const shutdownTimeout = 30 * time.Second

func Run(quitSignal chan os.Signal) {
	cfg := *config.NewConfig()
	appLogger, err := logger.New(cfg.LogFile)
	if err != nil {
		log.Fatal("Unable to initialize zap logger", err)
	}
	defer func() { _ = appLogger.Sync() }()

	decimal.MarshalJSONWithoutQuotes = true

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	jwtManager := utils.InitJWTManager(cfg.TokenName, cfg.Secret, appLogger)
	postgresPool := initPostgresPool(&cfg, appLogger)
	defer postgresPool.Close()
	trManager := db.NewTxManager(postgresPool)

	alerter, closeAlerter := initAlerter(&cfg, appLogger)
	defer closeAlerter()

	gatewayClient := gateway.NewClient(cfg.GatewayAddress, gateway.Credentials{
		ClientID:     cfg.GatewayClientID,
		ClientSecret: cfg.GatewayClientSecret,
		AccountID:    cfg.GatewayAccountID,
	}, cfg.GatewayRPS, cfg.GatewayTimeout, appLogger)

	ledgerRepo := ledgerRepository.NewPostgresLedgerRepository(postgresPool, appLogger)
	ledgerServ := ledgerService.NewLedgerService(ledgerRepo, appLogger)

	balanceRepo := balanceRepository.NewPostgresBalanceRepository(postgresPool, appLogger)
	balanceServ := balanceService.NewBalanceService(balanceRepo, ledgerServ, trManager, appMetrics, appLogger)

	userRepo := userRepository.NewPostgresUserRepository(postgresPool, appLogger)
	userServ := userService.NewUserService(userRepo, balanceServ, trManager, appLogger)

	poolRepo := poolRepository.NewPostgresPoolRepository(postgresPool, appLogger)
	poolServ := poolService.NewPoolService(poolRepo, balanceServ, gatewayClient, trManager, alerter, appMetrics, cfg.Pool, cfg.GatewayAccountID, appLogger)

	depositRepo := depositRepository.NewPostgresDepositRepository(postgresPool, appLogger)
	depositServ := depositService.NewDepositService(depositRepo, poolServ, ledgerServ, trManager, appLogger)

	payoutRepo := payoutRepository.NewPostgresPayoutRepository(postgresPool, appLogger)
	payoutServ := payoutService.NewPayoutService(payoutRepo, balanceServ, poolServ, ledgerServ, gatewayClient, trManager, appMetrics, appLogger)
	payoutProcessor := payoutService.NewProcessor(payoutServ, cfg.Schedule, appLogger)

	purchaseServ := purchaseService.NewPurchaseService(balanceServ, poolServ, ledgerServ, gatewayClient, appLogger)

	reconciliationServ := reconciliationService.NewReconciliationService(
		balanceServ, balanceRepo, ledgerServ, poolServ, gatewayClient, alerter, appMetrics, cfg.Reconciliation, appLogger)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), shutdownTimeout)
	if errBootstrap := poolServ.Bootstrap(startupCtx); errBootstrap != nil {
		appLogger.Fatal("Unable to bootstrap pool account", zap.Error(errBootstrap))
	}
	if errAdmin := userServ.EnsureAdmin(startupCtx, cfg.AdminLogin, cfg.AdminPassword); errAdmin != nil {
		appLogger.Fatal("Unable to create admin account", zap.Error(errAdmin))
	}
	cancelStartup()

	jobs, closeLocker := initScheduler(&cfg, appMetrics, appLogger)
	defer closeLocker()
	registerJobs(jobs, &cfg, poolServ, reconciliationServ, payoutProcessor, appLogger)

	requestLogger := middleware.InitRequestLogger(appLogger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, appLogger)

	e := echo.New()
	e.HideBanner = true

	e.Use(requestLogger.RequestLogger())
	e.Use(echoMiddleware.Gzip())
	e.Use(echoMiddleware.Decompress())

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	userHandler.NewUserHandler(e, userServ, jwtManager, appLogger)
	balanceHandler.NewBalanceHandler(e, balanceServ, appLogger, jwtAuth)
	poolHandler.NewPoolHandler(e, poolServ, appLogger, jwtAuth)
	depositHandler.NewDepositHandler(e, depositServ, appLogger, jwtAuth)
	payoutHandler.NewPayoutHandler(e, payoutServ, appLogger, jwtAuth)
	purchaseHandler.NewPurchaseHandler(e, purchaseServ, appLogger, jwtAuth)
	reconciliationHandler.NewReconciliationHandler(e, reconciliationServ, appLogger, jwtAuth)

	jobs.Start()

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	go func() {
		<-quitSignal

		shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownTimeout)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		jobs.Stop(shutdownCtx)

		if errShutdown := e.Shutdown(shutdownCtx); errShutdown != nil {
			e.Logger.Fatal(errShutdown)
		}
		serverStopCtx()
	}()

	errStart := e.Start(cfg.Address)
	if errStart != nil && !errors.Is(errStart, http.ErrServerClosed) {
		appLogger.Fatal("Unable to start server", zap.Error(errStart))
	}

	<-serverCtx.Done()
}

func initPostgresPool(cfg *config.Config, logger *zap.Logger) *db.PostgresPool {
	postgresPool, err := db.NewPostgresPool(cfg.DatabaseURI, logger)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}

	migrations, err := db.NewMigrations(cfg.DatabaseURI, logger)
	if err != nil {
		logger.Fatal("Unable to create migrations", zap.Error(err))
	}

	err = migrations.MigrateUp()
	if err != nil {
		logger.Fatal("Unable to up migrations", zap.Error(err))
	}

	logger.Info("Connected to database")
	return postgresPool
}

// initAlerter always logs alerts and also publishes them to the broker when
// one is configured.
func initAlerter(cfg *config.Config, logger *zap.Logger) (alert.Alerter, func()) {
	alerters := alert.Multi{alert.NewLogAlerter(logger)}
	if cfg.AMQPURL == "" {
		return alerters, func() {}
	}

	amqpAlerter, err := alert.NewAMQPAlerter(cfg.AMQPURL, cfg.AlertExchange, logger)
	if err != nil {
		logger.Fatal("Unable to connect to alert broker", zap.Error(err))
	}

	return append(alerters, amqpAlerter), amqpAlerter.Close
}

func initScheduler(cfg *config.Config, appMetrics *metrics.Metrics, logger *zap.Logger) (*scheduler.Scheduler, func()) {
	if cfg.RedisAddress == "" {
		return scheduler.New(nil, cfg.Schedule.JobLockTTL, appMetrics, logger), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Unable to connect to redis", zap.Error(err))
	}
	logger.Info("Job locks use redis", zap.String("address", cfg.RedisAddress))

	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Error("Unable to close redis client", zap.Error(err))
		}
	}

	return scheduler.New(scheduler.NewRedisLocker(client), cfg.Schedule.JobLockTTL, appMetrics, logger), closeClient
}

func registerJobs(
	jobs *scheduler.Scheduler,
	cfg *config.Config,
	pool *poolService.PoolUseCase,
	reconciliation *reconciliationService.ReconciliationUseCase,
	payouts *payoutService.Processor,
	logger *zap.Logger,
) {
	schedule := []struct {
		name string
		spec string
		job  scheduler.Job
	}{
		{
			name: "pool-sync",
			spec: cfg.Schedule.PoolSync,
			job: func(ctx context.Context) error {
				_, err := pool.SyncFromGateway(ctx)
				return err
			},
		},
		{
			name: "reconciliation",
			spec: cfg.Schedule.Reconciliation,
			job: func(ctx context.Context) error {
				_, err := reconciliation.RunSampled(ctx)
				if errors.Is(err, apperrors.ErrReconciliationAlreadyInProgress) {
					logger.Info("Reconciliation already running, skipping scheduled run")
					return nil
				}
				return err
			},
		},
		{
			name: "payout-processor",
			spec: cfg.Schedule.PayoutProcessor,
			job:  payouts.Run,
		},
	}

	for _, s := range schedule {
		if err := jobs.Register(s.name, s.spec, s.job); err != nil {
			logger.Fatal("Unable to schedule job", zap.Error(err))
		}
	}
}
