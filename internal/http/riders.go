package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/services"
)

func GetRiders(w http.ResponseWriter, r *http.Request) {
	riderService := middlewares.GetServiceFromContext[models.RiderService](w, r, middlewares.RiderServiceKey)

	riders, err := (*riderService).GetRiders(r.Context())
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during getting riders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"riders":  riders,
	}, http.StatusOK)
}

func SetRiderOnline(w http.ResponseWriter, r *http.Request) {
	riderService := middlewares.GetServiceFromContext[models.RiderService](w, r, middlewares.RiderServiceKey)
	riderID := chi.URLParam(r, "id")

	online, err := strconv.ParseBool(chi.URLParam(r, "online"))
	if err != nil {
		middlewares.EncodeJSONError(w, "Online flag must be true or false", http.StatusBadRequest)
		return
	}

	if err := (*riderService).SetOnline(r.Context(), riderID, online); err != nil {
		if errors.Is(err, services.ErrRiderIsNotExist) {
			middlewares.EncodeJSONError(w, "Rider does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating online flag: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}

func UpdateRider(w http.ResponseWriter, r *http.Request) {
	update := middlewares.GetParsedJSONData[models.RiderUpdate](w, r)
	riderService := middlewares.GetServiceFromContext[models.RiderService](w, r, middlewares.RiderServiceKey)
	riderID := chi.URLParam(r, "id")

	rider, err := (*riderService).UpdateRider(r.Context(), riderID, update)
	if err != nil {
		if errors.Is(err, services.ErrRiderIsNotExist) {
			middlewares.EncodeJSONError(w, "Rider does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating rider: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"rider":   rider,
	}, http.StatusOK)
}
