package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
	"github.com/jackc/pgx/v5"
)

var (
	ErrOrderNotFound   = errors.New("order does not exist")
	ErrOrderNotPending = errors.New("order is not awaiting assignment")
)

const (
	SelectOrdersQuery = `
		SELECT
			o.id,
			o.status,
			o.address_line1,
			o.address_line2,
			o.city,
			o.postcode,
			o.payment_type,
			o.priority,
			o.total_price,
			o.pickup_time,
			o.delivery_time,
			o.created_at,
			c.id,
			c.name,
			c.email,
			c.phone_number,
			r.id,
			r.name,
			r.phone_number,
			r.vehicle_type
		FROM
			orders o
			JOIN customers c ON c.id = o.customer_id
			LEFT JOIN riders r ON r.id = o.rider_id
	`
	SelectOrderQuery = SelectOrdersQuery + `
		WHERE
			o.id = $1
	`
	SelectOrderItemsQuery = `
		SELECT
			order_id,
			name,
			quantity,
			price,
			specifications
		FROM
			order_items
		WHERE
			order_id = ANY($1)
		ORDER BY
			id
	`
	SelectOrderStepsQuery = `
		SELECT
			order_id,
			status,
			note,
			created_at
		FROM
			order_steps
		WHERE
			order_id = ANY($1)
		ORDER BY
			id
	`
	AssignOrderQuery = `
		UPDATE
			orders
		SET
			rider_id = $1,
			status = $2
		WHERE
			id = $3
			AND status = $4
	`
	UpdateOrderStatusQuery = `
		UPDATE
			orders
		SET
			status = $2
		WHERE
			id = $1
	`
	InsertOrderStepQuery = `
		INSERT INTO
			order_steps (order_id, status, note)
		VALUES ($1, $2, $3)
	`
	IncrementRiderOrdersQuery = `
		UPDATE
			riders
		SET
			active_orders = active_orders + 1,
			current_load = current_load + 1
		WHERE
			id = $1
	`
)

func scanOrderRow(rows pgx.Rows) (*models.Order, error) {
	var (
		order                       models.Order
		pickupTime, deliveryTime    *time.Time
		createdAt                   time.Time
		riderID, riderName          *string
		riderPhone, riderVehicle    *string
	)

	err := rows.Scan(
		&order.ID,
		&order.Status,
		&order.DeliveryAddress.AddressLine1,
		&order.DeliveryAddress.AddressLine2,
		&order.DeliveryAddress.City,
		&order.DeliveryAddress.Postcode,
		&order.PaymentType,
		&order.Priority,
		&order.TotalPrice,
		&pickupTime,
		&deliveryTime,
		&createdAt,
		&order.User.ID,
		&order.User.Name,
		&order.User.Email,
		&order.User.PhoneNumber,
		&riderID,
		&riderName,
		&riderPhone,
		&riderVehicle,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan order row: %w", err)
	}

	order.CreatedAt = utils.RFC3339Date{Time: createdAt}
	if pickupTime != nil {
		order.PickupTime = &utils.RFC3339Date{Time: *pickupTime}
	}
	if deliveryTime != nil {
		order.DeliveryTime = &utils.RFC3339Date{Time: *deliveryTime}
	}
	if riderID != nil {
		order.Rider = &models.RiderSummary{
			ID:          *riderID,
			Name:        deref(riderName),
			PhoneNumber: deref(riderPhone),
			VehicleType: deref(riderVehicle),
		}
	}

	return &order, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// loadOrderChildren attaches items and step histories to the given orders
// with one query per child table.
func (d *Database) loadOrderChildren(ctx context.Context, orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*models.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	rows, err := d.db.Query(ctx, SelectOrderItemsQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			item    models.OrderItem
		)
		if err := rows.Scan(&orderID, &item.Name, &item.Quantity, &item.Price, &item.Specifications); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order items: %w", err)
	}

	stepRows, err := d.db.Query(ctx, SelectOrderStepsQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to load order steps: %w", err)
	}
	defer stepRows.Close()

	for stepRows.Next() {
		var (
			orderID   string
			step      models.Step
			createdAt time.Time
		)
		if err := stepRows.Scan(&orderID, &step.Status, &step.Note, &createdAt); err != nil {
			return fmt.Errorf("failed to scan order step: %w", err)
		}
		step.CreatedAt = utils.RFC3339Date{Time: createdAt}
		if order, ok := byID[orderID]; ok {
			order.Steps = append(order.Steps, step)
		}
	}
	if err := stepRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order steps: %w", err)
	}

	return nil
}

// FindAllOrders returns every order with its customer and rider summaries,
// line items and full step history.
func (d *Database) FindAllOrders(ctx context.Context) (*[]models.Order, error) {
	rows, err := d.db.Query(ctx, SelectOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	defer rows.Close()

	var loaded []*models.Order
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	if err := d.loadOrderChildren(ctx, loaded); err != nil {
		return nil, err
	}

	result := make([]models.Order, len(loaded))
	for i, order := range loaded {
		result[i] = *order
	}

	return &result, nil
}

// FindOrder loads one order in full. Returns nil without an error when the
// order does not exist.
func (d *Database) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	rows, err := d.db.Query(ctx, SelectOrderQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to load order: %w", err)
		}
		return nil, nil
	}

	order, err := scanOrderRow(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	if err := d.loadOrderChildren(ctx, []*models.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

// AssignOrder sets the rider reference, appends the assignment step and
// bumps the rider's counters in one transaction. The order must still be in
// the awaiting-assignment state; otherwise nothing changes.
func (d *Database) AssignOrder(ctx context.Context, riderID, orderID string) error {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, AssignOrderQuery, riderID, models.StatusAssign, orderID, models.StatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to assign order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotPending
	}

	if _, err := tx.Exec(ctx, InsertOrderStepQuery, orderID, models.StatusAssign, "Order assigned to rider"); err != nil {
		return fmt.Errorf("failed to record assignment step: %w", err)
	}

	if _, err := tx.Exec(ctx, IncrementRiderOrdersQuery, riderID); err != nil {
		return fmt.Errorf("failed to update rider counters: %w", err)
	}

	return tx.Commit(ctx)
}

// AppendStep adds one lifecycle event and moves the order's status in the
// same transaction, keeping the status == last-step invariant.
func (d *Database) AppendStep(ctx context.Context, orderID string, status models.OrderStatus, note string) error {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, UpdateOrderStatusQuery, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	if _, err := tx.Exec(ctx, InsertOrderStepQuery, orderID, status, note); err != nil {
		return fmt.Errorf("failed to record step: %w", err)
	}

	return tx.Commit(ctx)
}
