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

func GetServices(w http.ResponseWriter, r *http.Request) {
	catalogService := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)

	catalog, err := (*catalogService).GetServices(r.Context())
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during getting services: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success":  true,
		"services": catalog,
	}, http.StatusOK)
}

func CreateService(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.Service](w, r)
	catalogService := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)

	service, err := (*catalogService).CreateService(r.Context(), data)
	if err != nil {
		if errors.Is(err, services.ErrInvalidService) {
			middlewares.EncodeJSONError(w, "Service is invalid", http.StatusBadRequest)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during creating service: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"service": service,
	}, http.StatusCreated)
}

func UpdateService(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.Service](w, r)
	catalogService := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)
	serviceID := chi.URLParam(r, "id")

	service, err := (*catalogService).UpdateService(r.Context(), serviceID, data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidService):
			middlewares.EncodeJSONError(w, "Service is invalid", http.StatusBadRequest)
		case errors.Is(err, services.ErrServiceIsNotExist):
			middlewares.EncodeJSONError(w, "Service does not exist", http.StatusNotFound)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating service: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"service": service,
	}, http.StatusOK)
}

func DeleteService(w http.ResponseWriter, r *http.Request) {
	catalogService := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)
	serviceID := chi.URLParam(r, "id")

	if err := (*catalogService).DeleteService(r.Context(), serviceID); err != nil {
		if errors.Is(err, services.ErrServiceIsNotExist) {
			middlewares.EncodeJSONError(w, "Service does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during deleting service: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}

func ToggleService(w http.ResponseWriter, r *http.Request) {
	catalogService := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)
	serviceID := chi.URLParam(r, "id")

	active, err := strconv.ParseBool(chi.URLParam(r, "active"))
	if err != nil {
		middlewares.EncodeJSONError(w, "Active flag must be true or false", http.StatusBadRequest)
		return
	}

	if err := (*catalogService).ToggleService(r.Context(), serviceID, active); err != nil {
		if errors.Is(err, services.ErrServiceIsNotExist) {
			middlewares.EncodeJSONError(w, "Service does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during toggling service: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}
