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

func GetTickets(w http.ResponseWriter, r *http.Request) {
	ticketService := middlewares.GetServiceFromContext[models.TicketService](w, r, middlewares.TicketServiceKey)

	tickets, err := (*ticketService).GetTickets(r.Context())
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during getting tickets: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"tickets": tickets,
	}, http.StatusOK)
}

func SendSupportReply(w http.ResponseWriter, r *http.Request) {
	reply := middlewares.GetParsedJSONData[models.TicketReply](w, r)
	ticketService := middlewares.GetServiceFromContext[models.TicketService](w, r, middlewares.TicketServiceKey)
	ticketID := chi.URLParam(r, "id")

	ticket, err := (*ticketService).Reply(r.Context(), ticketID, reply)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyReply):
			middlewares.EncodeJSONError(w, "Reply message must not be empty", http.StatusBadRequest)
		case errors.Is(err, services.ErrTicketIsNotExist):
			middlewares.EncodeJSONError(w, "Ticket does not exist", http.StatusNotFound)
		default:
			middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during sending reply: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"ticket":  ticket,
	}, http.StatusOK)
}

func UpdateSupportTicket(w http.ResponseWriter, r *http.Request) {
	update := middlewares.GetParsedJSONData[models.TicketUpdate](w, r)
	ticketService := middlewares.GetServiceFromContext[models.TicketService](w, r, middlewares.TicketServiceKey)
	ticketID := chi.URLParam(r, "id")

	ticket, err := (*ticketService).UpdateTicket(r.Context(), ticketID, update)
	if err != nil {
		if errors.Is(err, services.ErrTicketIsNotExist) {
			middlewares.EncodeJSONError(w, "Ticket does not exist", http.StatusNotFound)
			return
		}

		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during updating ticket: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"ticket":  ticket,
	}, http.StatusOK)
}
