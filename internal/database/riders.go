package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/jackc/pgx/v5"
)

var ErrRiderNotFound = errors.New("rider does not exist")

const (
	SelectRidersQuery = `
		SELECT
			r.id,
			r.name,
			r.email,
			r.phone_number,
			r.vehicle_type,
			r.max_capacity,
			r.current_load,
			r.active_orders,
			r.rating,
			r.status,
			r.online,
			coalesce(array_agg(rsa.postcode) FILTER (WHERE rsa.postcode IS NOT NULL), '{}')
		FROM
			riders r
			LEFT JOIN rider_service_areas rsa ON rsa.rider_id = r.id
		GROUP BY
			r.id
		ORDER BY
			r.name
	`
	SelectRiderQuery = `
		SELECT
			r.id,
			r.name,
			r.email,
			r.phone_number,
			r.vehicle_type,
			r.max_capacity,
			r.current_load,
			r.active_orders,
			r.rating,
			r.status,
			r.online,
			coalesce(array_agg(rsa.postcode) FILTER (WHERE rsa.postcode IS NOT NULL), '{}')
		FROM
			riders r
			LEFT JOIN rider_service_areas rsa ON rsa.rider_id = r.id
		WHERE
			r.id = $1
		GROUP BY
			r.id
	`
	UpdateRiderOnlineQuery = `
		UPDATE
			riders
		SET
			online = $2
		WHERE
			id = $1
	`
	UpdateRiderQuery = `
		UPDATE
			riders
		SET
			name = $2,
			email = $3,
			phone_number = $4,
			vehicle_type = $5,
			max_capacity = $6,
			status = $7
		WHERE
			id = $1
	`
	DeleteRiderAreasQuery = `
		DELETE FROM
			rider_service_areas
		WHERE
			rider_id = $1
	`
	InsertRiderAreaQuery = `
		INSERT INTO
			rider_service_areas (rider_id, postcode)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
)

func scanRider(row pgx.Row) (*models.Rider, error) {
	rider := &models.Rider{}

	err := row.Scan(
		&rider.ID,
		&rider.Name,
		&rider.Email,
		&rider.PhoneNumber,
		&rider.VehicleType,
		&rider.MaxCapacity,
		&rider.CurrentLoad,
		&rider.ActiveOrders,
		&rider.Rating,
		&rider.Status,
		&rider.Online,
		&rider.ServiceAreas,
	)
	if err != nil {
		return nil, err
	}

	return rider, nil
}

// FindAllRiders returns every rider with the aggregated service-area set.
func (d *Database) FindAllRiders(ctx context.Context) (*[]models.Rider, error) {
	rows, err := d.db.Query(ctx, SelectRidersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load riders: %w", err)
	}
	defer rows.Close()

	var result []models.Rider
	for rows.Next() {
		rider, err := scanRider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rider: %w", err)
		}
		result = append(result, *rider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate riders: %w", err)
	}

	return &result, nil
}

// FindRider returns nil without an error when the rider does not exist.
func (d *Database) FindRider(ctx context.Context, riderID string) (*models.Rider, error) {
	rider, err := scanRider(d.db.QueryRow(ctx, SelectRiderQuery, riderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load rider: %w", err)
	}

	return rider, nil
}

// SetRiderOnline flips the online flag riders toggle from the mobile app.
func (d *Database) SetRiderOnline(ctx context.Context, riderID string, online bool) error {
	tag, err := d.db.Exec(ctx, UpdateRiderOnlineQuery, riderID, online)
	if err != nil {
		return fmt.Errorf("failed to update online flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRiderNotFound
	}
	return nil
}

// UpdateRider persists the rider profile and replaces the service-area set
// when one is supplied.
func (d *Database) UpdateRider(ctx context.Context, rider *models.Rider, replaceAreas bool) error {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, UpdateRiderQuery,
		rider.ID,
		rider.Name,
		rider.Email,
		rider.PhoneNumber,
		rider.VehicleType,
		rider.MaxCapacity,
		rider.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update rider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRiderNotFound
	}

	if replaceAreas {
		if _, err := tx.Exec(ctx, DeleteRiderAreasQuery, rider.ID); err != nil {
			return fmt.Errorf("failed to clear rider areas: %w", err)
		}
		for _, postcode := range rider.ServiceAreas {
			if _, err := tx.Exec(ctx, InsertRiderAreaQuery, rider.ID, postcode); err != nil {
				return fmt.Errorf("failed to add rider area: %w", err)
			}
		}
	}

	return tx.Commit(ctx)
}
