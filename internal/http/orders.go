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

func GetOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	orders, err := (*orderService).GetOrders(r.Context())
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during getting orders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"orders":  orders,
	}, http.StatusOK)
}

func GetEligibleRiders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	orderID := chi.URLParam(r, "orderId")

	riders, err := (*orderService).GetEligibleRiders(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderIsNotExist) {
			middlewares.EncodeJSONError(w, "Order does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during getting eligible riders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"riders":  riders,
	}, http.StatusOK)
}

// AssignOrder pairs a rider with a pending order. Eligibility and the
// pending-state guard live in the service, so a stale console view gets a
// clean conflict instead of a half-applied assignment.
func AssignOrder(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	riderID := chi.URLParam(r, "riderId")
	orderID := chi.URLParam(r, "orderId")

	if err := (*orderService).AssignOrder(r.Context(), riderID, orderID); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderIsNotExist):
			middlewares.EncodeJSONError(w, "Order does not exist", http.StatusNotFound)
		case errors.Is(err, services.ErrRiderIsNotExist):
			middlewares.EncodeJSONError(w, "Rider does not exist", http.StatusNotFound)
		case errors.Is(err, services.ErrOrderNotPending):
			middlewares.EncodeJSONError(w, "Order is not awaiting assignment", http.StatusConflict)
		case errors.Is(err, services.ErrRiderNotEligible):
			middlewares.EncodeJSONError(w, "Rider is not eligible for this order", http.StatusConflict)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during assigning order: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"message": "Order assigned",
	}, http.StatusOK)
}

// UpdateStep appends a lifecycle step and returns the reloaded order so
// the console replaces its copy wholesale.
func UpdateStep(w http.ResponseWriter, r *http.Request) {
	update := middlewares.GetParsedJSONData[models.StatusUpdate](w, r)
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	orderID := chi.URLParam(r, "orderId")

	order, err := (*orderService).UpdateStep(r.Context(), orderID, update)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnknownStatus):
			middlewares.EncodeJSONError(w, fmt.Sprintf("Unknown status %q", update.Status), http.StatusBadRequest)
		case errors.Is(err, services.ErrOrderIsNotExist):
			middlewares.EncodeJSONError(w, "Order does not exist", http.StatusNotFound)
		case errors.Is(err, services.ErrSameStatus):
			middlewares.EncodeJSONError(w, "Order already has this status", http.StatusConflict)
		case errors.Is(err, services.ErrInvalidTransition):
			middlewares.EncodeJSONError(w, err.Error(), http.StatusConflict)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating order step: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"order":   order,
	}, http.StatusOK)
}
