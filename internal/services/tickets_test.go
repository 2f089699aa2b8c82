package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

type ticketStorageStub struct {
	tickets map[string]*models.Ticket
}

func (s *ticketStorageStub) FindAllTickets(ctx context.Context) (*[]models.Ticket, error) {
	all := make([]models.Ticket, 0, len(s.tickets))
	for _, ticket := range s.tickets {
		all = append(all, *ticket)
	}
	return &all, nil
}

func (s *ticketStorageStub) FindTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	ticket, ok := s.tickets[ticketID]
	if !ok {
		return nil, nil
	}
	copied := *ticket
	return &copied, nil
}

func (s *ticketStorageStub) AppendTicketMessage(ctx context.Context, ticketID, sender, body string) error {
	ticket := s.tickets[ticketID]
	ticket.Messages = append(ticket.Messages, models.TicketMessage{Sender: sender, Body: body})
	return nil
}

func (s *ticketStorageStub) UpdateTicket(ctx context.Context, ticketID, status, priority string) error {
	ticket := s.tickets[ticketID]
	ticket.Status = status
	ticket.Priority = priority
	return nil
}

func newTicketFixture() *ticketStorageStub {
	return &ticketStorageStub{
		tickets: map[string]*models.Ticket{
			"TKT-1": {ID: "TKT-1", Status: models.TicketOpen, Priority: "High"},
			"TKT-2": {ID: "TKT-2", Status: models.TicketInProgress, Priority: "Low"},
		},
	}
}

func TestTicketReply(t *testing.T) {
	t.Run("appends an admin message and moves Open to In Progress", func(t *testing.T) {
		storage := newTicketFixture()
		service := NewTicketService(storage)

		ticket, err := service.Reply(context.Background(), "TKT-1", models.TicketReply{Message: "On it"})
		require.NoError(t, err)

		assert.Equal(t, models.TicketInProgress, ticket.Status)
		assert.Equal(t, "High", ticket.Priority)
		require.Len(t, ticket.Messages, 1)
		assert.Equal(t, "admin", ticket.Messages[0].Sender)
		assert.Equal(t, "On it", ticket.Messages[0].Body)
	})

	t.Run("leaves a non-Open status alone", func(t *testing.T) {
		storage := newTicketFixture()
		service := NewTicketService(storage)

		ticket, err := service.Reply(context.Background(), "TKT-2", models.TicketReply{Message: "Update"})
		require.NoError(t, err)
		assert.Equal(t, models.TicketInProgress, ticket.Status)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		service := NewTicketService(newTicketFixture())
		_, err := service.Reply(context.Background(), "TKT-1", models.TicketReply{})
		assert.ErrorIs(t, err, ErrEmptyReply)
	})

	t.Run("rejects unknown ticket", func(t *testing.T) {
		service := NewTicketService(newTicketFixture())
		_, err := service.Reply(context.Background(), "TKT-404", models.TicketReply{Message: "hello"})
		assert.ErrorIs(t, err, ErrTicketIsNotExist)
	})
}

func TestTicketUpdate(t *testing.T) {
	storage := newTicketFixture()
	service := NewTicketService(storage)

	t.Run("updates only supplied fields", func(t *testing.T) {
		status := models.TicketClosed
		ticket, err := service.UpdateTicket(context.Background(), "TKT-1", models.TicketUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.TicketClosed, ticket.Status)
		assert.Equal(t, "High", ticket.Priority)
	})

	t.Run("rejects unknown ticket", func(t *testing.T) {
		status := models.TicketClosed
		_, err := service.UpdateTicket(context.Background(), "TKT-404", models.TicketUpdate{Status: &status})
		assert.ErrorIs(t, err, ErrTicketIsNotExist)
	})
}
