package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateArea  = errors.New("service area already exists for this postcode")
	ErrAreaNotFound   = errors.New("service area does not exist")
	ErrAreaReferenced = errors.New("service area is still referenced")
)

const (
	// Reference counts ride along so the console can disable the delete
	// action, and so DeleteArea can refuse while anything points here.
	SelectAreasQuery = `
		SELECT
			sa.id,
			sa.postcode,
			sa.name,
			sa.city,
			sa.state,
			sa.active,
			sa.service_days,
			sa.delivery_fee,
			sa.minimum_order,
			sa.coverage,
			sa.latitude,
			sa.longitude,
			(SELECT count(*) FROM rider_service_areas rsa WHERE rsa.postcode = sa.postcode),
			(SELECT count(*) FROM services s WHERE sa.postcode = ANY(s.zipcodes))
		FROM
			service_areas sa
		ORDER BY
			sa.postcode
	`
	SelectAreaQuery = `
		SELECT
			sa.id,
			sa.postcode,
			sa.name,
			sa.city,
			sa.state,
			sa.active,
			sa.service_days,
			sa.delivery_fee,
			sa.minimum_order,
			sa.coverage,
			sa.latitude,
			sa.longitude,
			(SELECT count(*) FROM rider_service_areas rsa WHERE rsa.postcode = sa.postcode),
			(SELECT count(*) FROM services s WHERE sa.postcode = ANY(s.zipcodes))
		FROM
			service_areas sa
		WHERE
			sa.id = $1
	`
	InsertAreaQuery = `
		INSERT INTO
			service_areas (id, postcode, name, city, state, active, service_days,
			               delivery_fee, minimum_order, coverage, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	UpdateAreaQuery = `
		UPDATE
			service_areas
		SET
			name = $2,
			city = $3,
			state = $4,
			active = $5,
			service_days = $6,
			delivery_fee = $7,
			minimum_order = $8,
			coverage = $9,
			latitude = $10,
			longitude = $11
		WHERE
			id = $1
	`
	DeleteAreaQuery = `
		DELETE FROM
			service_areas
		WHERE
			id = $1
	`
	ToggleAreaQuery = `
		UPDATE
			service_areas
		SET
			active = $2
		WHERE
			id = $1
	`
)

func scanArea(row pgx.Row) (*models.ServiceArea, error) {
	area := &models.ServiceArea{}

	err := row.Scan(
		&area.ID,
		&area.Postcode,
		&area.Name,
		&area.City,
		&area.State,
		&area.Active,
		&area.ServiceDays,
		&area.DeliveryFee,
		&area.MinimumOrder,
		&area.Coverage,
		&area.Latitude,
		&area.Longitude,
		&area.RiderCount,
		&area.ServiceCount,
	)
	if err != nil {
		return nil, err
	}

	return area, nil
}

// FindAllAreas returns every service area with its reference counts.
func (d *Database) FindAllAreas(ctx context.Context) (*[]models.ServiceArea, error) {
	rows, err := d.db.Query(ctx, SelectAreasQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load service areas: %w", err)
	}
	defer rows.Close()

	var result []models.ServiceArea
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service area: %w", err)
		}
		result = append(result, *area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service areas: %w", err)
	}

	return &result, nil
}

// FindArea returns nil without an error when the area does not exist.
func (d *Database) FindArea(ctx context.Context, areaID string) (*models.ServiceArea, error) {
	area, err := scanArea(d.db.QueryRow(ctx, SelectAreaQuery, areaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load service area: %w", err)
	}

	return area, nil
}

// CreateArea inserts a coverage unit; the postcode is the natural key.
func (d *Database) CreateArea(ctx context.Context, area models.ServiceArea) error {
	_, err := d.db.Exec(ctx, InsertAreaQuery,
		area.ID,
		area.Postcode,
		area.Name,
		area.City,
		area.State,
		area.Active,
		area.ServiceDays,
		area.DeliveryFee,
		area.MinimumOrder,
		area.Coverage,
		area.Latitude,
		area.Longitude,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateArea
		}
		return fmt.Errorf("failed to create service area: %w", err)
	}
	return nil
}

// UpdateArea persists everything but the postcode, which is immutable.
func (d *Database) UpdateArea(ctx context.Context, area models.ServiceArea) error {
	tag, err := d.db.Exec(ctx, UpdateAreaQuery,
		area.ID,
		area.Name,
		area.City,
		area.State,
		area.Active,
		area.ServiceDays,
		area.DeliveryFee,
		area.MinimumOrder,
		area.Coverage,
		area.Latitude,
		area.Longitude,
	)
	if err != nil {
		return fmt.Errorf("failed to update service area: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAreaNotFound
	}
	return nil
}

// DeleteArea removes the area unless riders or services still reference
// its postcode.
func (d *Database) DeleteArea(ctx context.Context, areaID string) error {
	area, err := d.FindArea(ctx, areaID)
	if err != nil {
		return err
	}
	if area == nil {
		return ErrAreaNotFound
	}
	if area.Referenced() {
		return ErrAreaReferenced
	}

	if _, err := d.db.Exec(ctx, DeleteAreaQuery, areaID); err != nil {
		return fmt.Errorf("failed to delete service area: %w", err)
	}
	return nil
}

// ToggleArea flips the active flag.
func (d *Database) ToggleArea(ctx context.Context, areaID string, active bool) error {
	tag, err := d.db.Exec(ctx, ToggleAreaQuery, areaID, active)
	if err != nil {
		return fmt.Errorf("failed to toggle service area: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAreaNotFound
	}
	return nil
}
