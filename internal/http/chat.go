package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/services"
)

// CreateChat provisions the channel for an (order, rider) pair. Repeats
// for an existing pair succeed, so the console may call it liberally.
func CreateChat(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.ChatRequest](w, r)
	chatService := middlewares.GetServiceFromContext[models.ChatService](w, r, middlewares.ChatServiceKey)

	if data.OrderID == "" || data.RiderID == "" {
		middlewares.EncodeJSONError(w, "Request doesn't contain orderId or riderId", http.StatusBadRequest)
		return
	}

	if err := (*chatService).CreateChannel(r.Context(), data.OrderID, data.RiderID); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderIsNotExist):
			middlewares.EncodeJSONError(w, "Order does not exist", http.StatusNotFound)
		case errors.Is(err, services.ErrRiderIsNotExist):
			middlewares.EncodeJSONError(w, "Rider does not exist", http.StatusNotFound)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during creating chat: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{"success": true}, http.StatusCreated)
}
