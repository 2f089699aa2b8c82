package services

import (
	"context"
	"errors"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

var (
	ErrTicketIsNotExist = errors.New("ticket does not exist")
	ErrEmptyReply       = errors.New("reply message must not be empty")
)

// TicketService handles support tickets: listing, operator replies and
// status/priority updates.
type TicketService struct {
	storage ticketStorage
}

type ticketStorage interface {
	FindAllTickets(ctx context.Context) (*[]models.Ticket, error)
	FindTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
	AppendTicketMessage(ctx context.Context, ticketID, sender, body string) error
	UpdateTicket(ctx context.Context, ticketID, status, priority string) error
}

func NewTicketService(storage ticketStorage) *TicketService {
	return &TicketService{storage: storage}
}

// GetTickets returns every ticket with its message thread.
func (t *TicketService) GetTickets(ctx context.Context) ([]models.Ticket, error) {
	tickets, err := t.storage.FindAllTickets(ctx)
	if err != nil {
		return []models.Ticket{}, err
	}

	if tickets == nil {
		return []models.Ticket{}, nil
	}

	return *tickets, nil
}

// Reply appends an operator message; an Open ticket moves to In Progress.
// Returns the full reloaded ticket.
func (t *TicketService) Reply(ctx context.Context, ticketID string, reply models.TicketReply) (*models.Ticket, error) {
	if reply.Message == "" {
		return nil, ErrEmptyReply
	}

	ticket, err := t.storage.FindTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketIsNotExist
	}

	if err := t.storage.AppendTicketMessage(ctx, ticketID, "admin", reply.Message); err != nil {
		return nil, err
	}

	if ticket.Status == models.TicketOpen {
		if err := t.storage.UpdateTicket(ctx, ticketID, models.TicketInProgress, ticket.Priority); err != nil {
			return nil, err
		}
	}

	return t.storage.FindTicket(ctx, ticketID)
}

// UpdateTicket changes status and/or priority, keeping untouched fields.
func (t *TicketService) UpdateTicket(ctx context.Context, ticketID string, update models.TicketUpdate) (*models.Ticket, error) {
	ticket, err := t.storage.FindTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketIsNotExist
	}

	status := ticket.Status
	priority := ticket.Priority
	if update.Status != nil {
		status = *update.Status
	}
	if update.Priority != nil {
		priority = *update.Priority
	}

	if err := t.storage.UpdateTicket(ctx, ticketID, status, priority); err != nil {
		if errors.Is(err, database.ErrTicketNotFound) {
			return nil, ErrTicketIsNotExist
		}
		return nil, err
	}

	return t.storage.FindTicket(ctx, ticketID)
}
