package services

import (
	"context"
	"errors"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
)

// ChatService provisions communication channels between an order's
// customer and its assigned rider.
type ChatService struct {
	storage chatStorage
}

type chatStorage interface {
	FindOrder(ctx context.Context, orderID string) (*models.Order, error)
	FindRider(ctx context.Context, riderID string) (*models.Rider, error)
	CreateChat(ctx context.Context, chatID, orderID, riderID string) error
}

func NewChatService(storage chatStorage) *ChatService {
	return &ChatService{storage: storage}
}

// CreateChannel stores one channel per (order, rider) pair. Repeating the
// call for an existing pair is a no-op, so assignment retries stay safe.
func (c *ChatService) CreateChannel(ctx context.Context, orderID, riderID string) error {
	order, err := c.storage.FindOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderIsNotExist
	}

	rider, err := c.storage.FindRider(ctx, riderID)
	if err != nil {
		return err
	}
	if rider == nil {
		return ErrRiderIsNotExist
	}

	err = c.storage.CreateChat(ctx, utils.NewID("CHT"), orderID, riderID)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateChat) {
			return nil
		}
		return err
	}

	return nil
}
