package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
)

var ErrTicketNotFound = errors.New("ticket does not exist")

const (
	SelectTicketsQuery = `
		SELECT
			t.id,
			t.subject,
			t.status,
			t.priority,
			t.created_at,
			c.id,
			c.name,
			c.email,
			c.phone_number
		FROM
			tickets t
			JOIN customers c ON c.id = t.customer_id
		ORDER BY
			t.created_at DESC
	`
	SelectTicketQuery = `
		SELECT
			t.id,
			t.subject,
			t.status,
			t.priority,
			t.created_at,
			c.id,
			c.name,
			c.email,
			c.phone_number
		FROM
			tickets t
			JOIN customers c ON c.id = t.customer_id
		WHERE
			t.id = $1
	`
	SelectTicketMessagesQuery = `
		SELECT
			ticket_id,
			sender,
			body,
			created_at
		FROM
			ticket_messages
		WHERE
			ticket_id = ANY($1)
		ORDER BY
			id
	`
	InsertTicketMessageQuery = `
		INSERT INTO
			ticket_messages (ticket_id, sender, body)
		VALUES ($1, $2, $3)
	`
	UpdateTicketQuery = `
		UPDATE
			tickets
		SET
			status = $2,
			priority = $3
		WHERE
			id = $1
	`
)

func (d *Database) loadTicketMessages(ctx context.Context, tickets []*models.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	byID := make(map[string]*models.Ticket, len(tickets))
	ids := make([]string, 0, len(tickets))
	for _, ticket := range tickets {
		byID[ticket.ID] = ticket
		ids = append(ids, ticket.ID)
	}

	rows, err := d.db.Query(ctx, SelectTicketMessagesQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to load ticket messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ticketID  string
			message   models.TicketMessage
			createdAt time.Time
		)
		if err := rows.Scan(&ticketID, &message.Sender, &message.Body, &createdAt); err != nil {
			return fmt.Errorf("failed to scan ticket message: %w", err)
		}
		message.CreatedAt = utils.RFC3339Date{Time: createdAt}
		if ticket, ok := byID[ticketID]; ok {
			ticket.Messages = append(ticket.Messages, message)
		}
	}
	return rows.Err()
}

// FindAllTickets returns every support ticket with its message thread.
func (d *Database) FindAllTickets(ctx context.Context) (*[]models.Ticket, error) {
	rows, err := d.db.Query(ctx, SelectTicketsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	defer rows.Close()

	var loaded []*models.Ticket
	for rows.Next() {
		var (
			ticket    models.Ticket
			createdAt time.Time
		)
		err := rows.Scan(
			&ticket.ID,
			&ticket.Subject,
			&ticket.Status,
			&ticket.Priority,
			&createdAt,
			&ticket.Customer.ID,
			&ticket.Customer.Name,
			&ticket.Customer.Email,
			&ticket.Customer.PhoneNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		ticket.CreatedAt = utils.RFC3339Date{Time: createdAt}
		loaded = append(loaded, &ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}

	if err := d.loadTicketMessages(ctx, loaded); err != nil {
		return nil, err
	}

	result := make([]models.Ticket, len(loaded))
	for i, ticket := range loaded {
		result[i] = *ticket
	}

	return &result, nil
}

// FindTicket loads one ticket in full. Returns nil without an error when it
// does not exist.
func (d *Database) FindTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	rows, err := d.db.Query(ctx, SelectTicketQuery, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to load ticket: %w", err)
		}
		return nil, nil
	}

	var (
		ticket    models.Ticket
		createdAt time.Time
	)
	err = rows.Scan(
		&ticket.ID,
		&ticket.Subject,
		&ticket.Status,
		&ticket.Priority,
		&createdAt,
		&ticket.Customer.ID,
		&ticket.Customer.Name,
		&ticket.Customer.Email,
		&ticket.Customer.PhoneNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ticket: %w", err)
	}
	ticket.CreatedAt = utils.RFC3339Date{Time: createdAt}
	rows.Close()

	if err := d.loadTicketMessages(ctx, []*models.Ticket{&ticket}); err != nil {
		return nil, err
	}

	return &ticket, nil
}

// AppendTicketMessage adds one message to the thread.
func (d *Database) AppendTicketMessage(ctx context.Context, ticketID, sender, body string) error {
	if _, err := d.db.Exec(ctx, InsertTicketMessageQuery, ticketID, sender, body); err != nil {
		return fmt.Errorf("failed to append ticket message: %w", err)
	}
	return nil
}

// UpdateTicket persists status and priority.
func (d *Database) UpdateTicket(ctx context.Context, ticketID, status, priority string) error {
	tag, err := d.db.Exec(ctx, UpdateTicketQuery, ticketID, status, priority)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketNotFound
	}
	return nil
}
