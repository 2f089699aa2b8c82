package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/services"
)

func GetCustomers(w http.ResponseWriter, r *http.Request) {
	customerService := middlewares.GetServiceFromContext[models.CustomerService](w, r, middlewares.CustomerServiceKey)

	customers, err := (*customerService).GetCustomers(r.Context())
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during getting customers: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"users":   customers,
	}, http.StatusOK)
}

func SetCustomerStatus(w http.ResponseWriter, r *http.Request) {
	customerService := middlewares.GetServiceFromContext[models.CustomerService](w, r, middlewares.CustomerServiceKey)
	customerID := chi.URLParam(r, "id")
	status := chi.URLParam(r, "status")

	if err := (*customerService).SetStatus(r.Context(), customerID, status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCustomerStatus):
			middlewares.EncodeJSONError(w, fmt.Sprintf("Status %q is invalid", status), http.StatusBadRequest)
		case errors.Is(err, services.ErrCustomerIsNotExist):
			middlewares.EncodeJSONError(w, "Customer does not exist", http.StatusNotFound)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating customer status: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusOK)
}
