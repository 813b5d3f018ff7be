package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/Ekrem-A/Catalog.Api/internal/cfg"
	v1Http "github.com/Ekrem-A/Catalog.Api/internal/delivery/v1/http"
	"github.com/Ekrem-A/Catalog.Api/internal/infrastructure/kafka"
	"github.com/Ekrem-A/Catalog.Api/internal/repository/pgdb"
	pgdbConv "github.com/Ekrem-A/Catalog.Api/internal/repository/pgdb/converter"
	redisRepo "github.com/Ekrem-A/Catalog.Api/internal/repository/redis"
	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/clients"
	"github.com/Ekrem-A/Catalog.Api/pkg/closer"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/Ekrem-A/Catalog.Api/pkg/postgres"
	"github.com/Ekrem-A/Catalog.Api/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	shutdownTimeout    = 10 * time.Second
	topicCreateTimeout = 10 * time.Second
)

func Run() {
	log := logger.NewZapLogger()
	defer log.Sync()

	// Цены сериализуются как JSON-числа, не строки
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	cl := closer.NewCloser(0)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverter()
	brConv := pgdbConv.NewBrandConverter()
	catConv := pgdbConv.NewCategoryConverter()

	productRepo := pgdb.NewProductRepo(prConv)
	brandRepo := pgdb.NewBrandRepo(brConv)
	categoryRepo := pgdb.NewCategoryRepo(catConv)

	productQueries := pgdb.NewProductQueryRepo(db.Pool, prConv)
	brandQueries := pgdb.NewBrandQueryRepo(db.Pool, brConv)
	categoryQueries := pgdb.NewCategoryQueryRepo(db.Pool, catConv)

	uow := tr.NewUnitOfWork(db.Pool)

	cacheRepo, err := initCache(log, cfg, cl)
	if err != nil {
		log.Errorf(err, "failed to initialize cache")
		os.Exit(1)
	}

	publisher, err := initPublisher(log, cfg, cl)
	if err != nil {
		log.Errorf(err, "failed to initialize event publisher")
		os.Exit(1)
	}

	productUC := usecase.NewProductUC(
		productRepo,
		brandRepo,
		categoryRepo,
		productQueries,
		uow,
		cacheRepo,
		publisher,
		cfg.Cache.ItemTTL,
		cfg.Cache.ListTTL,
		log,
	)
	categoryUC := usecase.NewCategoryUC(
		categoryRepo,
		productRepo,
		categoryQueries,
		uow,
		cacheRepo,
		publisher,
		cfg.Cache.ListTTL,
		log,
	)
	brandUC := usecase.NewBrandUC(
		brandRepo,
		brandQueries,
		uow,
		cacheRepo,
		publisher,
		cfg.Cache.ListTTL,
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, categoryUC, brandUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Warnf("Shutdown finished with errors: %v", err)
	}

	log.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// initCache подключает Redis либо подставляет no-op кэш, когда он выключен.
func initCache(log logger.Logger, cfg *config.Config, cl *closer.Closer) (usecase.CacheRepository, error) {
	if !cfg.Redis.Enabled {
		log.Infof("Redis disabled, running without cache")
		return redisRepo.NewNopCacheRepo(), nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	return redisRepo.NewCacheRepo(redisClient), nil
}

// initPublisher поднимает Kafka-продюсер либо подставляет no-op издателя,
// когда брокеры не заданы.
func initPublisher(log logger.Logger, cfg *config.Config, cl *closer.Closer) (usecase.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Infof("Kafka brokers not configured, event publishing disabled")
		return kafka.NewNopPublisher(log), nil
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	err = producer.EnsureTopics(topicCreateTimeout,
		usecase.TopicProductCreated,
		usecase.TopicProductUpdated,
		usecase.TopicProductDeleted,
		usecase.TopicProductPriceChanged,
		usecase.TopicProductStockUpdated,
		usecase.TopicCategoryCreated,
		usecase.TopicCategoryUpdated,
		usecase.TopicBrandCreated,
		usecase.TopicBrandUpdated,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	return producer, nil
}
