package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/freshbox-tech/Freshbox-admin/internal/logger"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"go.uber.org/zap"
)

var (
	ErrOrderIsNotExist   = errors.New("order does not exist")
	ErrRiderIsNotExist   = errors.New("rider does not exist")
	ErrOrderNotPending   = errors.New("order is not awaiting assignment")
	ErrRiderNotEligible  = errors.New("rider is not eligible for this order")
	ErrSameStatus        = errors.New("order already has this status")
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

// OrderService owns the order lifecycle: listing, rider assignment and
// step-history updates.
type OrderService struct {
	storage  orderStorage
	chats    chatProvisioner
	jobQueue orderJobQueue
	notifier statusNotifier
}

type orderStorage interface {
	FindAllOrders(ctx context.Context) (*[]models.Order, error)
	FindOrder(ctx context.Context, orderID string) (*models.Order, error)
	FindRider(ctx context.Context, riderID string) (*models.Rider, error)
	FindAllRiders(ctx context.Context) (*[]models.Rider, error)
	AssignOrder(ctx context.Context, riderID, orderID string) error
	AppendStep(ctx context.Context, orderID string, status models.OrderStatus, note string) error
}

type chatProvisioner interface {
	CreateChannel(ctx context.Context, orderID, riderID string) error
}

type orderJobQueue interface {
	Enqueue(job Job) error
}

type statusNotifier interface {
	PublishStatusUpdate(ctx context.Context, order *models.Order, previous models.OrderStatus) error
}

func NewOrderService(storage orderStorage, chats chatProvisioner, jobQueue orderJobQueue, notifier statusNotifier) *OrderService {
	return &OrderService{
		storage:  storage,
		chats:    chats,
		jobQueue: jobQueue,
		notifier: notifier,
	}
}

// GetOrders returns every order with its full step history.
func (o *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := o.storage.FindAllOrders(ctx)
	if err != nil {
		return []models.Order{}, err
	}

	if orders == nil {
		return []models.Order{}, nil
	}

	return *orders, nil
}

// EligibleRiders computes the subset of riders that may take an order:
// Available and covering the order's delivery postcode.
func EligibleRiders(riders []models.Rider, order *models.Order) []models.Rider {
	result := make([]models.Rider, 0)
	for _, rider := range riders {
		if rider.EligibleFor(order) {
			result = append(result, rider)
		}
	}
	return result
}

// GetEligibleRiders resolves an order and returns its eligible riders.
func (o *OrderService) GetEligibleRiders(ctx context.Context, orderID string) ([]models.Rider, error) {
	order, err := o.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderIsNotExist
	}

	riders, err := o.storage.FindAllRiders(ctx)
	if err != nil {
		return nil, err
	}
	if riders == nil {
		return []models.Rider{}, nil
	}

	return EligibleRiders(*riders, order), nil
}

// AssignOrder commits one (rider, order) assignment. Eligibility is
// re-checked server side so a stale console view cannot force an invalid
// pairing. The chat channel for the pair is provisioned right after the
// assignment commits; its failure is reported, never swallowed, because it
// leaves an assigned order without a channel.
func (o *OrderService) AssignOrder(ctx context.Context, riderID, orderID string) error {
	order, err := o.storage.FindOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderIsNotExist
	}
	if order.Status != models.StatusProcessing {
		return ErrOrderNotPending
	}

	rider, err := o.storage.FindRider(ctx, riderID)
	if err != nil {
		return err
	}
	if rider == nil {
		return ErrRiderIsNotExist
	}
	if !rider.EligibleFor(order) {
		return ErrRiderNotEligible
	}

	if err := o.storage.AssignOrder(ctx, riderID, orderID); err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		if err := o.chats.CreateChannel(jobCtx, orderID, riderID); err != nil {
			logger.Log.Error("failed to provision chat channel for assignment",
				zap.String("orderID", orderID),
				zap.String("riderID", riderID),
				zap.Error(err),
			)
		}
	}
	if err := o.jobQueue.Enqueue(job); err != nil {
		logger.Log.Error("failed to enqueue chat provisioning",
			zap.String("orderID", orderID),
			zap.String("riderID", riderID),
			zap.Error(err),
		)
	}

	return nil
}

// UpdateStep appends one lifecycle event to an order and returns the full
// reloaded record, so callers always replace their copy with server truth
// rather than merging locally.
func (o *OrderService) UpdateStep(ctx context.Context, orderID string, update models.StatusUpdate) (*models.Order, error) {
	status, err := models.ParseStatus(update.Status)
	if err != nil {
		return nil, err
	}

	order, err := o.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderIsNotExist
	}

	if status == order.Status {
		return nil, ErrSameStatus
	}
	if !models.CanTransitionTo(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := o.storage.AppendStep(ctx, orderID, status, update.Note); err != nil {
		return nil, err
	}

	updated, err := o.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderIsNotExist
	}

	if o.notifier != nil {
		if err := o.notifier.PublishStatusUpdate(ctx, updated, order.Status); err != nil {
			logger.Log.Error("failed to publish status update",
				zap.String("orderID", orderID),
				zap.String("status", string(status)),
				zap.Error(err),
			)
		}
	}

	return updated, nil
}
