package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateChat = errors.New("chat channel already exists")

const InsertChatQuery = `
	INSERT INTO
		chats (id, order_id, rider_id)
	VALUES ($1, $2, $3)
`

// CreateChat provisions a communication channel between the customer of an
// order and its assigned rider. One channel per (order, rider) pair.
func (d *Database) CreateChat(ctx context.Context, chatID, orderID, riderID string) error {
	_, err := d.db.Exec(ctx, InsertChatQuery, chatID, orderID, riderID)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateChat
		}
		return fmt.Errorf("failed to create chat channel: %w", err)
	}
	return nil
}
