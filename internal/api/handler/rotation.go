package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/scheduler"
	"github.com/tablerota/rotation-api/internal/usecases/rotating"
	"github.com/tablerota/rotation-api/internal/usecases/selecting"
	"github.com/tablerota/rotation-api/pkg/apiErrors"
	"github.com/tablerota/rotation-api/pkg/middleware"
)

// RunRotation triggers a manual or emergency rotation on behalf of the
// authenticated admin.
func RunRotation(service rotating.RotationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rotating.RotateRequest

		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
				return
			}
		}

		switch req.Type {
		case "":
			req.Type = domain.RotationTypeManual
		case domain.RotationTypeManual, domain.RotationTypeEmergency:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Unknown rotation type "+string(req.Type), nil)
			return
		}

		if req.Type == domain.RotationTypeEmergency && req.TargetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "target_id is required for emergency rotations", nil)
			return
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.UserClaims); ok {
			req.TriggeredBy = &claims.Email
		}

		result, err := service.Rotate(r.Context(), req)
		if err != nil {
			handleRotationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Error encoding rotation result")
		}
	}
}

// SuggestFeatured runs the weekly multi-factor selection and returns the
// top-scored discovery candidate. The pick is advisory: nothing is
// persisted until an admin enqueues or rotates to it.
func SuggestFeatured(selector selecting.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidate, err := selector.SelectFeatured()
		if err != nil {
			if errors.Is(err, selecting.ErrNoCandidateFound) {
				apiErrors.WriteError(w, apiErrors.ErrNoCandidateFound, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Featured suggestion failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Featured suggestion failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(candidate); err != nil {
			logrus.WithError(err).Error("Error encoding featured suggestion")
		}
	}
}

func GetNextRotation(configRepo repository.RotationConfigRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := configRepo.Get()
		if err != nil {
			logrus.WithError(err).Error("Error loading rotation config")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error loading rotation config", nil)
			return
		}
		if config == nil {
			apiErrors.WriteError(w, apiErrors.ErrConfigMissing, "Rotation config not found", nil)
			return
		}

		response := map[string]any{
			"is_active":        config.IsActive,
			"next_rotation_at": config.NextRotationAt,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Error encoding next rotation response")
		}
	}
}

func GetRotationHistory(historyRepo repository.RotationHistoryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseQueryUint(r, "limit", 20)
		if limit > 100 {
			limit = 100
		}
		offset := parseQueryUint(r, "offset", 0)

		records, err := historyRepo.List(limit, offset)
		if err != nil {
			logrus.WithError(err).Error("Error listing rotation history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing rotation history", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logrus.WithError(err).Error("Error encoding rotation history")
		}
	}
}

func GetRotationConfig(configRepo repository.RotationConfigRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := configRepo.Get()
		if err != nil {
			logrus.WithError(err).Error("Error loading rotation config")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error loading rotation config", nil)
			return
		}
		if config == nil {
			apiErrors.WriteError(w, apiErrors.ErrConfigMissing, "Rotation config not found", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(config); err != nil {
			logrus.WithError(err).Error("Error encoding rotation config")
		}
	}
}

// UpdateRotationConfig applies a partial update to the schedule. Changing
// any schedule field recomputes next_rotation_at from the new values.
func UpdateRotationConfig(configRepo repository.RotationConfigRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateRotationConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		config, err := configRepo.Get()
		if err != nil {
			logrus.WithError(err).Error("Error loading rotation config")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error loading rotation config", nil)
			return
		}
		if config == nil {
			apiErrors.WriteError(w, apiErrors.ErrConfigMissing, "Rotation config not found", nil)
			return
		}

		scheduleChanged := false
		if req.DayOfWeek != nil {
			if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "day_of_week must be between 0 and 6", nil)
				return
			}
			config.DayOfWeek = *req.DayOfWeek
			scheduleChanged = true
		}
		if req.TimeOfDay != nil {
			if _, err := time.Parse("15:04", *req.TimeOfDay); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "time_of_day must be in HH:MM format", nil)
				return
			}
			config.TimeOfDay = *req.TimeOfDay
			scheduleChanged = true
		}
		if req.Timezone != nil {
			if _, err := time.LoadLocation(*req.Timezone); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Unknown timezone "+*req.Timezone, nil)
				return
			}
			config.Timezone = *req.Timezone
			scheduleChanged = true
		}
		if req.IsActive != nil {
			config.IsActive = *req.IsActive
		}
		if req.MinQueueSize != nil {
			if *req.MinQueueSize < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "min_queue_size cannot be negative", nil)
				return
			}
			config.MinQueueSize = *req.MinQueueSize
		}

		if scheduleChanged {
			next, err := config.NextOccurrence(time.Now())
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			config.NextRotationAt = &next
		}

		if err := configRepo.Save(config); err != nil {
			logrus.WithError(err).Error("Error saving rotation config")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error saving rotation config", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(config); err != nil {
			logrus.WithError(err).Error("Error encoding rotation config")
		}
	}
}

func GetRotationStatus(service rotating.RotationService, rotationScheduler *scheduler.RotationSchedulerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"rotation":  service.GetStatus(),
			"scheduler": rotationScheduler.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Error encoding rotation status")
		}
	}
}

func handleRotationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rotating.ErrRotationInProgress):
		apiErrors.WriteError(w, apiErrors.ErrRotationInProgress, err.Error(), nil)

	case errors.Is(err, rotating.ErrQueueEmpty):
		apiErrors.WriteError(w, apiErrors.ErrQueueEmpty, err.Error(), nil)

	case errors.Is(err, rotating.ErrTargetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, err.Error(), nil)

	case errors.Is(err, rotating.ErrTargetAlreadyFeatured):
		apiErrors.WriteError(w, apiErrors.ErrTargetFeatured, err.Error(), nil)

	case errors.Is(err, rotating.ErrConfigMissing):
		apiErrors.WriteError(w, apiErrors.ErrConfigMissing, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Rotation failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Rotation failed", nil)
	}
}

func parseQueryUint(r *http.Request, key string, fallback uint64) uint64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}
