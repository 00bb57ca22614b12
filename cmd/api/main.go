package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/infrastructure/integrator/yelp"
	"github.com/tablerota/rotation-api/infrastructure/integrator/yelp/yelpclient"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/api"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/scheduler"
	"github.com/tablerota/rotation-api/internal/usecases/authenticating"
	"github.com/tablerota/rotation-api/internal/usecases/maintaining"
	"github.com/tablerota/rotation-api/internal/usecases/notifying"
	"github.com/tablerota/rotation-api/internal/usecases/queueing"
	"github.com/tablerota/rotation-api/internal/usecases/rotating"
	"github.com/tablerota/rotation-api/internal/usecases/selecting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	restaurantRepo := repository.NewRestaurantRepository(pgConn)
	queueRepo := repository.NewQueueRepository(pgConn)
	configRepo := repository.NewRotationConfigRepository(pgConn)
	historyRepo := repository.NewRotationHistoryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	yelpClient := yelpclient.NewClient(cfg)
	discovery := yelp.New(cfg, yelpClient)

	queueService := queueing.NewService(pgConn, queueRepo, restaurantRepo)
	selector := selecting.NewService(discovery, restaurantRepo, historyRepo, cfg)
	maintainer := maintaining.NewService(selector, queueService, restaurantRepo, cfg)
	notifier := notifying.NewService(cfg)

	rotationService := rotating.NewService(
		pgConn,
		restaurantRepo,
		historyRepo,
		configRepo,
		queueService,
		maintainer,
		notifier,
		cfg.RotationTick.ReplenishOnRotate,
	)

	rotationScheduler := scheduler.NewRotationSchedulerService(configRepo, rotationService, cfg)
	if err := rotationScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting rotation scheduler")
	} else {
		logrus.Info("Rotation scheduler started")
	}

	server, err := api.New(
		cfg,
		queueService,
		rotationService,
		maintainer,
		authenticator,
		selector,
		restaurantRepo,
		configRepo,
		historyRepo,
		rotationScheduler,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
