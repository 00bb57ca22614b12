package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/pkg/apiErrors"
)

// GetFeatured returns the restaurant currently on the front page, or 404
// when nothing is featured yet.
func GetFeatured(restaurantRepo repository.RestaurantRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := restaurantRepo.GetFeatured()
		if err != nil {
			logrus.WithError(err).Error("Error loading featured restaurant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error loading featured restaurant", nil)
			return
		}
		if featured == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "No restaurant is currently featured", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(featured); err != nil {
			logrus.WithError(err).Error("Error encoding featured restaurant")
		}
	}
}

func RecordView(restaurantRepo repository.RestaurantRepository) http.HandlerFunc {
	return recordEngagement(restaurantRepo.RecordView, "view")
}

func RecordClick(restaurantRepo repository.RestaurantRepository) http.HandlerFunc {
	return recordEngagement(restaurantRepo.RecordClick, "click")
}

func recordEngagement(record func(id string) error, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Restaurant ID is required", nil)
			return
		}

		if err := record(id); err != nil {
			logrus.WithError(err).WithField("restaurant_id", id).Errorf("Error recording %s", kind)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error recording engagement", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
