package models

import "github.com/freshbox-tech/Freshbox-admin/internal/utils"

// Ticket statuses form a small closed set; replies move Open tickets to
// In Progress automatically.
const (
	TicketOpen       = "Open"
	TicketInProgress = "In Progress"
	TicketPending    = "Pending Customer Response"
	TicketClosed     = "Closed"
)

// TicketMessage is one message in a support thread.
type TicketMessage struct {
	Sender    string            `json:"sender"`
	Body      string            `json:"body"`
	CreatedAt utils.RFC3339Date `json:"createdAt"`
}

// Ticket is a customer support request.
type Ticket struct {
	ID        string            `json:"_id"`
	Customer  CustomerSummary   `json:"user"`
	Subject   string            `json:"subject"`
	Status    string            `json:"status"`
	Priority  string            `json:"priority"`
	Messages  []TicketMessage   `json:"messages"`
	CreatedAt utils.RFC3339Date `json:"createdAt"`
}

// TicketReply is the body of a support reply request.
type TicketReply struct {
	Message string `json:"message"`
}

// TicketUpdate changes ticket status and/or priority.
type TicketUpdate struct {
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

// ChatRequest provisions a communication channel between the customer of
// an order and its assigned rider.
type ChatRequest struct {
	OrderID string `json:"orderId"`
	RiderID string `json:"riderId"`
}
