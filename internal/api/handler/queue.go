package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/maintaining"
	"github.com/tablerota/rotation-api/internal/usecases/queueing"
	"github.com/tablerota/rotation-api/pkg/apiErrors"
	"github.com/tablerota/rotation-api/pkg/middleware"
	"github.com/tablerota/rotation-api/pkg/utils"
)

type ReorderRequest struct {
	Position int `json:"position"`
}

// EnqueueQueueRequest carries scheduled_for as a plain YYYY-MM-DD date,
// the format the admin frontend sends.
type EnqueueQueueRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	Position     *int    `json:"position,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ScheduledFor string  `json:"scheduled_for,omitempty"`
}

type BulkReorderRequest struct {
	Updates []domain.QueuePositionUpdate `json:"updates"`
}

type MaintainRequest struct {
	TargetSize *int `json:"target_size,omitempty"`
}

func ListQueue(service queueing.QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.List()
		if err != nil {
			logrus.WithError(err).Error("Error listing queue")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing queue", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.WithError(err).Error("Error encoding queue list")
		}
	}
}

func EnqueueEntry(service queueing.QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body EnqueueQueueRequest

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		if body.RestaurantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "restaurant_id is required", nil)
			return
		}

		req := queueing.EnqueueRequest{
			RestaurantID: body.RestaurantID,
			Position:     body.Position,
			Notes:        body.Notes,
		}

		if body.ScheduledFor != "" {
			scheduledFor, err := utils.ParseDate(body.ScheduledFor)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "scheduled_for must be a YYYY-MM-DD date", nil)
				return
			}
			req.ScheduledFor = scheduledFor
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.UserClaims); ok {
			req.AddedBy = claims.Email
		}

		entry, err := service.Enqueue(r.Context(), req)
		if err != nil {
			handleQueueError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.WithError(err).Error("Error encoding queue entry")
		}
	}
}

func DequeueEntry(service queueing.QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if entryID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Entry ID is required", nil)
			return
		}

		if err := service.Dequeue(r.Context(), entryID); err != nil {
			handleQueueError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderEntry(service queueing.QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if entryID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Entry ID is required", nil)
			return
		}

		var req ReorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if err := service.Reorder(r.Context(), entryID, req.Position); err != nil {
			handleQueueError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func BulkReorderQueue(service queueing.QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkReorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		if len(req.Updates) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "updates is required", nil)
			return
		}

		if err := service.BulkReorder(r.Context(), req.Updates); err != nil {
			handleQueueError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ValidateQueueIntegrity(service queueing.QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.ValidateIntegrity()
		if err != nil {
			logrus.WithError(err).Error("Error validating queue integrity")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error validating queue integrity", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Error encoding integrity report")
		}
	}
}

func RepairQueueIntegrity(service queueing.QueueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repaired, err := service.RepairIntegrity(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error repairing queue integrity")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error repairing queue integrity", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"repaired": repaired}); err != nil {
			logrus.WithError(err).Error("Error encoding repair response")
		}
	}
}

// MaintainQueue triggers a replenishment run. The target size defaults to
// the configured one when the body omits it.
func MaintainQueue(maintainer maintaining.Maintainer, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MaintainRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
				return
			}
		}

		targetSize := cfg.Queue.TargetSize
		if req.TargetSize != nil {
			if *req.TargetSize <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "target_size must be positive: "+strconv.Itoa(*req.TargetSize), nil)
				return
			}
			targetSize = *req.TargetSize
		}

		result, err := maintainer.Maintain(r.Context(), targetSize)
		if err != nil {
			logrus.WithError(err).Error("Queue maintenance failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Queue maintenance failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Error encoding maintenance result")
		}
	}
}

func handleQueueError(w http.ResponseWriter, err error) {
	var queueErr *queueing.QueueError
	details := any(nil)
	if errors.As(err, &queueErr) && queueErr.EntryID != "" {
		details = map[string]string{"entry_id": queueErr.EntryID}
	}

	switch {
	case errors.Is(err, queueing.ErrEntryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrQueueEntryNotFound, err.Error(), details)

	case errors.Is(err, queueing.ErrAlreadyQueued):
		apiErrors.WriteError(w, apiErrors.ErrAlreadyQueued, err.Error(), details)

	case errors.Is(err, queueing.ErrAlreadyFeatured):
		apiErrors.WriteError(w, apiErrors.ErrAlreadyFeatured, err.Error(), details)

	case errors.Is(err, queueing.ErrInvalidOrder):
		apiErrors.WriteError(w, apiErrors.ErrInvalidQueueOrder, err.Error(), details)

	case errors.Is(err, queueing.ErrCannotRemoveActive), errors.Is(err, queueing.ErrEntryNotPending):
		apiErrors.WriteError(w, apiErrors.ErrQueueEntryNotActive, err.Error(), details)

	default:
		logrus.WithError(err).Error("Queue operation failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Queue operation failed", nil)
	}
}
