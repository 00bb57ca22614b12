package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tablerota/rotation-api/infrastructure/repository"
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

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Featured exposes the public read side: the current featured restaurant
// and its engagement counters.
func Featured(restaurantRepo repository.RestaurantRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/featured",
			Method:  http.MethodGet,
			Handler: GetFeatured(restaurantRepo),
		},
		{
			Path:    "/v1/featured/:id/view",
			Method:  http.MethodPost,
			Handler: RecordView(restaurantRepo),
		},
		{
			Path:    "/v1/featured/:id/click",
			Method:  http.MethodPost,
			Handler: RecordClick(restaurantRepo),
		},
	}
}

func Queue(service queueing.QueueService, maintainer maintaining.Maintainer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/queue",
			Method:      http.MethodGet,
			Handler:     ListQueue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/queue",
			Method:      http.MethodPost,
			Handler:     EnqueueEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Bulk reorder replaces the whole queue order, so it lives on
			// the collection path. A static sibling of /v1/queue/:id in the
			// same method tree would make httprouter panic at registration.
			Path:        "/v1/queue",
			Method:      http.MethodPut,
			Handler:     BulkReorderQueue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/queue/integrity",
			Method:      http.MethodGet,
			Handler:     ValidateQueueIntegrity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/queue/integrity/repair",
			Method:      http.MethodPost,
			Handler:     RepairQueueIntegrity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/queue/maintain",
			Method:      http.MethodPost,
			Handler:     MaintainQueue(maintainer, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/queue/:id",
			Method:      http.MethodDelete,
			Handler:     DequeueEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/queue/:id/position",
			Method:      http.MethodPut,
			Handler:     ReorderEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Rotation(
	service rotating.RotationService,
	configRepo repository.RotationConfigRepository,
	historyRepo repository.RotationHistoryRepository,
	selector selecting.Selector,
	rotationScheduler *scheduler.RotationSchedulerService,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rotation/run",
			Method:      http.MethodPost,
			Handler:     RunRotation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/rotation/suggestion",
			Method:      http.MethodGet,
			Handler:     SuggestFeatured(selector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rotation/next",
			Method:      http.MethodGet,
			Handler:     GetNextRotation(configRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rotation/history",
			Method:      http.MethodGet,
			Handler:     GetRotationHistory(historyRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rotation/config",
			Method:      http.MethodGet,
			Handler:     GetRotationConfig(configRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rotation/config",
			Method:      http.MethodPut,
			Handler:     UpdateRotationConfig(configRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/rotation/status",
			Method:      http.MethodGet,
			Handler:     GetRotationStatus(service, rotationScheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
