package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

const statusExchange = "order_status_fanout"

// StatusEvent is the message broadcast after every successful status
// change. Consumers (customer notifications, rider apps) fan out from the
// exchange.
type StatusEvent struct {
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId"`
	RiderID        string    `json:"riderId,omitempty"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"statusLabel"`
	Note           string    `json:"note,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// StatusNotifier publishes status events to RabbitMQ. A nil notifier is
// valid and publishes nothing, so the broker stays optional in dev setups.
type StatusNotifier struct {
	conn *amqp.Connection
}

func Connect(url string) (*StatusNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return &StatusNotifier{conn: conn}, nil
}

func (n *StatusNotifier) PublishStatusUpdate(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	if n == nil {
		return nil
	}

	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(statusExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	event := StatusEvent{
		OrderID:        order.ID,
		CustomerID:     order.User.ID,
		PreviousStatus: string(previous),
		Status:         string(order.Status),
		StatusLabel:    models.DisplayLabel(order.Status),
		OccurredAt:     time.Now(),
	}
	if order.Rider != nil {
		event.RiderID = order.Rider.ID
	}
	if len(order.Steps) > 0 {
		event.Note = order.Steps[len(order.Steps)-1].Note
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, statusExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (n *StatusNotifier) Close() error {
	if n == nil || n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
