package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/wetland/storefront-service/docs"
	"github.com/wetland/storefront-service/internal/app"
	"github.com/wetland/storefront-service/internal/config"
	"github.com/wetland/storefront-service/internal/entities"
	"github.com/wetland/storefront-service/internal/events"
	"github.com/wetland/storefront-service/internal/handler"
	"github.com/wetland/storefront-service/internal/notifier"
	"github.com/wetland/storefront-service/internal/postgres"
	"github.com/wetland/storefront-service/internal/repo"
	"github.com/wetland/storefront-service/internal/service"
	"github.com/wetland/storefront-service/pkg/cache"
	"github.com/wetland/storefront-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront API
// @version         1.0
// @description     Catalog, order lifecycle and shipping quotes
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	bus := events.NewBus(logger)
	emailNotifier := notifier.NewEmailNotifier(logger, nil)
	smsNotifier := notifier.NewSMSNotifier(logger, nil)
	relay := notifier.NewKafkaRelay(logger, conf.Kafka)

	bus.Subscribe(entities.EventOrderCreated, emailNotifier)
	bus.Subscribe(entities.EventOrderStatusChanged, emailNotifier)
	bus.Subscribe(entities.EventOrderStatusChanged, smsNotifier)
	bus.Subscribe(entities.EventOrderCreated, relay)
	bus.Subscribe(entities.EventOrderStatusChanged, relay)

	storefrontRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	catalogCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, storefrontRepo, bus)
	catalogService := service.NewCatalogService(logger, storefrontRepo, catalogCache)

	httpHandler := handler.NewHTTPHandler(logger, orderService, catalogService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(relay)
	app.SetStarters(catalogCache, warmUpAdapter{svc: catalogService})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type catalogWarmUpper interface {
	WarmUpCatalog(ctx context.Context) error
}

type warmUpAdapter struct {
	svc catalogWarmUpper
}

func (a warmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCatalog(ctx)
}
