package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

// orderStorageStub is a hand-rolled stand-in for the storage layer; the
// mutation counters let tests assert that failed operations touch nothing.
type orderStorageStub struct {
	orders map[string]*models.Order
	riders map[string]*models.Rider

	assignCalls int
	stepCalls   int
	appended    []models.Step

	assignErr error
	stepErr   error
}

func (s *orderStorageStub) FindAllOrders(ctx context.Context) (*[]models.Order, error) {
	all := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		all = append(all, *order)
	}
	return &all, nil
}

func (s *orderStorageStub) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (s *orderStorageStub) FindRider(ctx context.Context, riderID string) (*models.Rider, error) {
	rider, ok := s.riders[riderID]
	if !ok {
		return nil, nil
	}
	copied := *rider
	return &copied, nil
}

func (s *orderStorageStub) FindAllRiders(ctx context.Context) (*[]models.Rider, error) {
	all := make([]models.Rider, 0, len(s.riders))
	for _, rider := range s.riders {
		all = append(all, *rider)
	}
	return &all, nil
}

func (s *orderStorageStub) AssignOrder(ctx context.Context, riderID, orderID string) error {
	s.assignCalls++
	if s.assignErr != nil {
		return s.assignErr
	}

	order := s.orders[orderID]
	rider := s.riders[riderID]
	order.Status = models.StatusAssign
	order.Rider = &models.RiderSummary{ID: rider.ID, Name: rider.Name}
	order.Steps = append(order.Steps, models.Step{Status: models.StatusAssign})
	return nil
}

func (s *orderStorageStub) AppendStep(ctx context.Context, orderID string, status models.OrderStatus, note string) error {
	s.stepCalls++
	if s.stepErr != nil {
		return s.stepErr
	}

	order := s.orders[orderID]
	step := models.Step{Status: status, Note: note}
	order.Steps = append(order.Steps, step)
	order.Status = status
	s.appended = append(s.appended, step)
	return nil
}

type chatProvisionerStub struct {
	calls   int
	lastKey [2]string
	err     error
}

func (c *chatProvisionerStub) CreateChannel(ctx context.Context, orderID, riderID string) error {
	c.calls++
	c.lastKey = [2]string{orderID, riderID}
	return c.err
}

// syncJobQueue runs jobs inline so tests observe their effects immediately.
type syncJobQueue struct {
	enqueued int
	err      error
}

func (q *syncJobQueue) Enqueue(job Job) error {
	q.enqueued++
	if q.err != nil {
		return q.err
	}
	job(context.Background())
	return nil
}

type notifierStub struct {
	calls    int
	previous models.OrderStatus
	current  models.OrderStatus
	err      error
}

func (n *notifierStub) PublishStatusUpdate(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	n.calls++
	n.previous = previous
	n.current = order.Status
	return n.err
}

func newOrderFixture() *orderStorageStub {
	return &orderStorageStub{
		orders: map[string]*models.Order{
			"ORD-1": {
				ID:              "ORD-1",
				Status:          models.StatusProcessing,
				DeliveryAddress: models.Address{Postcode: "75001"},
				Steps:           []models.Step{{Status: models.StatusProcessing}},
			},
			"ORD-2": {
				ID:              "ORD-2",
				Status:          models.StatusDelivered,
				DeliveryAddress: models.Address{Postcode: "75001"},
			},
		},
		riders: map[string]*models.Rider{
			"R-1": {ID: "R-1", Name: "Avery", Status: models.RiderAvailable, ServiceAreas: []string{"75001"}},
			"R-2": {ID: "R-2", Name: "Blake", Status: models.RiderBusy, ServiceAreas: []string{"75001"}},
			"R-3": {ID: "R-3", Name: "Casey", Status: models.RiderAvailable, ServiceAreas: []string{"90210"}},
		},
	}
}

func TestEligibleRiders(t *testing.T) {
	storage := newOrderFixture()
	order := storage.orders["ORD-1"]

	riders := []models.Rider{*storage.riders["R-1"], *storage.riders["R-2"], *storage.riders["R-3"]}
	eligible := EligibleRiders(riders, order)

	// Of the three riders only the Available one covering 75001 passes.
	require.Len(t, eligible, 1)
	assert.Equal(t, "R-1", eligible[0].ID)
}

func TestGetEligibleRiders(t *testing.T) {
	storage := newOrderFixture()
	service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

	eligible, err := service.GetEligibleRiders(context.Background(), "ORD-1")
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "R-1", eligible[0].ID)

	_, err = service.GetEligibleRiders(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, ErrOrderIsNotExist)
}

func TestAssignOrder(t *testing.T) {
	t.Run("assigns an eligible rider and provisions the chat", func(t *testing.T) {
		storage := newOrderFixture()
		chats := &chatProvisionerStub{}
		queue := &syncJobQueue{}
		service := NewOrderService(storage, chats, queue, nil)

		require.NoError(t, service.AssignOrder(context.Background(), "R-1", "ORD-1"))

		assert.Equal(t, 1, storage.assignCalls)
		assert.Equal(t, models.StatusAssign, storage.orders["ORD-1"].Status)
		assert.Equal(t, 1, queue.enqueued)
		assert.Equal(t, 1, chats.calls)
		assert.Equal(t, [2]string{"ORD-1", "R-1"}, chats.lastKey)
	})

	t.Run("rejects a rider without coverage and mutates nothing", func(t *testing.T) {
		storage := newOrderFixture()
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		err := service.AssignOrder(context.Background(), "R-3", "ORD-1")
		assert.ErrorIs(t, err, ErrRiderNotEligible)
		assert.Equal(t, 0, storage.assignCalls)
		assert.Equal(t, models.StatusProcessing, storage.orders["ORD-1"].Status)
	})

	t.Run("rejects a busy rider", func(t *testing.T) {
		storage := newOrderFixture()
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		err := service.AssignOrder(context.Background(), "R-2", "ORD-1")
		assert.ErrorIs(t, err, ErrRiderNotEligible)
		assert.Equal(t, 0, storage.assignCalls)
	})

	t.Run("rejects an order already past assignment", func(t *testing.T) {
		storage := newOrderFixture()
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		err := service.AssignOrder(context.Background(), "R-1", "ORD-2")
		assert.ErrorIs(t, err, ErrOrderNotPending)
		assert.Equal(t, 0, storage.assignCalls)
	})

	t.Run("rejects unknown order and rider", func(t *testing.T) {
		storage := newOrderFixture()
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		assert.ErrorIs(t, service.AssignOrder(context.Background(), "R-1", "ORD-404"), ErrOrderIsNotExist)
		assert.ErrorIs(t, service.AssignOrder(context.Background(), "R-404", "ORD-1"), ErrRiderIsNotExist)
	})

	t.Run("storage failure surfaces and chat is never provisioned", func(t *testing.T) {
		storage := newOrderFixture()
		storage.assignErr = errors.New("tx aborted")
		chats := &chatProvisionerStub{}
		queue := &syncJobQueue{}
		service := NewOrderService(storage, chats, queue, nil)

		err := service.AssignOrder(context.Background(), "R-1", "ORD-1")
		assert.EqualError(t, err, "tx aborted")
		assert.Equal(t, 0, queue.enqueued)
		assert.Equal(t, 0, chats.calls)
	})

	t.Run("assignment succeeds even when chat provisioning fails", func(t *testing.T) {
		storage := newOrderFixture()
		chats := &chatProvisionerStub{err: errors.New("chat backend down")}
		service := NewOrderService(storage, chats, &syncJobQueue{}, nil)

		require.NoError(t, service.AssignOrder(context.Background(), "R-1", "ORD-1"))
		assert.Equal(t, models.StatusAssign, storage.orders["ORD-1"].Status)
		assert.Equal(t, 1, chats.calls)
	})
}

func TestUpdateStep(t *testing.T) {
	t.Run("appends a step and returns the reloaded order", func(t *testing.T) {
		storage := newOrderFixture()
		notifier := &notifierStub{}
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, notifier)

		order, err := service.UpdateStep(context.Background(), "ORD-1", models.StatusUpdate{
			Status: "scheduled",
			Note:   "picked up at depot",
		})
		require.NoError(t, err)

		assert.Equal(t, models.StatusScheduled, order.Status)
		require.Len(t, order.Steps, 2)
		assert.Equal(t, "picked up at depot", order.Steps[1].Note)

		assert.Equal(t, 1, notifier.calls)
		assert.Equal(t, models.StatusProcessing, notifier.previous)
		assert.Equal(t, models.StatusScheduled, notifier.current)
	})

	t.Run("rejects unknown status before touching storage", func(t *testing.T) {
		storage := newOrderFixture()
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		_, err := service.UpdateStep(context.Background(), "ORD-1", models.StatusUpdate{Status: "shipped"})
		assert.ErrorIs(t, err, models.ErrUnknownStatus)
		assert.Equal(t, 0, storage.stepCalls)
	})

	t.Run("rejects a no-op status change", func(t *testing.T) {
		storage := newOrderFixture()
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		_, err := service.UpdateStep(context.Background(), "ORD-1", models.StatusUpdate{Status: "processing"})
		assert.ErrorIs(t, err, ErrSameStatus)
		assert.Equal(t, 0, storage.stepCalls)
	})

	t.Run("rejects transitions out of a terminal status", func(t *testing.T) {
		storage := newOrderFixture()
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		_, err := service.UpdateStep(context.Background(), "ORD-2", models.StatusUpdate{Status: "processing"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, 0, storage.stepCalls)
	})

	t.Run("storage failure leaves the order unchanged", func(t *testing.T) {
		storage := newOrderFixture()
		storage.stepErr = errors.New("tx aborted")
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, nil)

		_, err := service.UpdateStep(context.Background(), "ORD-1", models.StatusUpdate{Status: "ready"})
		assert.EqualError(t, err, "tx aborted")
		assert.Equal(t, models.StatusProcessing, storage.orders["ORD-1"].Status)
		assert.Len(t, storage.orders["ORD-1"].Steps, 1)
	})

	t.Run("notifier failure does not fail the update", func(t *testing.T) {
		storage := newOrderFixture()
		notifier := &notifierStub{err: errors.New("broker down")}
		service := NewOrderService(storage, &chatProvisionerStub{}, &syncJobQueue{}, notifier)

		order, err := service.UpdateStep(context.Background(), "ORD-1", models.StatusUpdate{Status: "ready"})
		require.NoError(t, err)
		assert.Equal(t, models.StatusReady, order.Status)
		assert.Equal(t, 1, notifier.calls)
	})
}
