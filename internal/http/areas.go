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

func GetAreas(w http.ResponseWriter, r *http.Request) {
	areaService := middlewares.GetServiceFromContext[models.AreaService](w, r, middlewares.AreaServiceKey)

	areas, err := (*areaService).GetAreas(r.Context())
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during getting service areas: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success":      true,
		"serviceAreas": areas,
	}, http.StatusOK)
}

func CreateArea(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.ServiceArea](w, r)
	areaService := middlewares.GetServiceFromContext[models.AreaService](w, r, middlewares.AreaServiceKey)

	area, err := (*areaService).CreateArea(r.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArea):
			middlewares.EncodeJSONError(w, "Service area is invalid", http.StatusBadRequest)
		case errors.Is(err, services.ErrDuplicatePostcode):
			middlewares.EncodeJSONError(w, "Service area already exists for this postcode", http.StatusConflict)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during creating service area: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success":     true,
		"serviceArea": area,
	}, http.StatusCreated)
}

func UpdateArea(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.ServiceArea](w, r)
	areaService := middlewares.GetServiceFromContext[models.AreaService](w, r, middlewares.AreaServiceKey)
	areaID := chi.URLParam(r, "id")

	area, err := (*areaService).UpdateArea(r.Context(), areaID, data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArea):
			middlewares.EncodeJSONError(w, "Service area is invalid", http.StatusBadRequest)
		case errors.Is(err, services.ErrAreaIsNotExist):
			middlewares.EncodeJSONError(w, "Service area does not exist", http.StatusNotFound)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating service area: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success":     true,
		"serviceArea": area,
	}, http.StatusOK)
}

// DeleteArea refuses while riders or services still reference the
// postcode.
func DeleteArea(w http.ResponseWriter, r *http.Request) {
	areaService := middlewares.GetServiceFromContext[models.AreaService](w, r, middlewares.AreaServiceKey)
	areaID := chi.URLParam(r, "id")

	if err := (*areaService).DeleteArea(r.Context(), areaID); err != nil {
		switch {
		case errors.Is(err, services.ErrAreaIsNotExist):
			middlewares.EncodeJSONError(w, "Service area does not exist", http.StatusNotFound)
		case errors.Is(err, services.ErrAreaIsReferenced):
			middlewares.EncodeJSONError(w, "Service area is referenced by riders or services", http.StatusConflict)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during deleting service area: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}

func ToggleArea(w http.ResponseWriter, r *http.Request) {
	areaService := middlewares.GetServiceFromContext[models.AreaService](w, r, middlewares.AreaServiceKey)
	areaID := chi.URLParam(r, "id")

	active, err := strconv.ParseBool(chi.URLParam(r, "active"))
	if err != nil {
		middlewares.EncodeJSONError(w, "Active flag must be true or false", http.StatusBadRequest)
		return
	}

	if err := (*areaService).ToggleArea(r.Context(), areaID, active); err != nil {
		if errors.Is(err, services.ErrAreaIsNotExist) {
			middlewares.EncodeJSONError(w, "Service area does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during toggling service area: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}
