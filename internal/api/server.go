package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/api/handler"
	"github.com/tablerota/rotation-api/internal/api/handler/router"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/scheduler"
	"github.com/tablerota/rotation-api/internal/usecases/authenticating"
	"github.com/tablerota/rotation-api/internal/usecases/maintaining"
	"github.com/tablerota/rotation-api/internal/usecases/queueing"
	"github.com/tablerota/rotation-api/internal/usecases/rotating"
	"github.com/tablerota/rotation-api/internal/usecases/selecting"
	"github.com/tablerota/rotation-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	queueService queueing.QueueService,
	rotationService rotating.RotationService,
	maintainer maintaining.Maintainer,
	authenticator authenticating.Authenticator,
	selector selecting.Selector,
	restaurantRepo repository.RestaurantRepository,
	configRepo repository.RotationConfigRepository,
	historyRepo repository.RotationHistoryRepository,
	rotationScheduler *scheduler.RotationSchedulerService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Featured(restaurantRepo)...),
		router.WithRoutes(handler.Queue(queueService, maintainer, config)...),
		router.WithRoutes(handler.Rotation(rotationService, configRepo, historyRepo, selector, rotationScheduler)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
