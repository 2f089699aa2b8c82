package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/jackc/pgx/v5"
)

var ErrServiceNotFound = errors.New("service does not exist")

const (
	SelectServicesQuery = `
		SELECT
			id,
			name,
			description,
			category,
			price,
			active,
			zipcodes
		FROM
			services
		ORDER BY
			name
	`
	InsertServiceQuery = `
		INSERT INTO
			services (id, name, description, category, price, active, zipcodes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	UpdateServiceQuery = `
		UPDATE
			services
		SET
			name = $2,
			description = $3,
			category = $4,
			price = $5,
			active = $6,
			zipcodes = $7
		WHERE
			id = $1
	`
	DeleteServiceQuery = `
		DELETE FROM
			services
		WHERE
			id = $1
	`
	ToggleServiceQuery = `
		UPDATE
			services
		SET
			active = $2
		WHERE
			id = $1
	`
	SelectServiceQuery = `
		SELECT
			id,
			name,
			description,
			category,
			price,
			active,
			zipcodes
		FROM
			services
		WHERE
			id = $1
	`
)

func scanService(row pgx.Row) (*models.Service, error) {
	service := &models.Service{}

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Category,
		&service.Price,
		&service.Active,
		&service.Zipcodes,
	)
	if err != nil {
		return nil, err
	}

	return service, nil
}

// FindAllServices returns the whole laundry-service catalog.
func (d *Database) FindAllServices(ctx context.Context) (*[]models.Service, error) {
	rows, err := d.db.Query(ctx, SelectServicesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	defer rows.Close()

	var result []models.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		result = append(result, *service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}

	return &result, nil
}

// FindService returns nil without an error when the entry does not exist.
func (d *Database) FindService(ctx context.Context, serviceID string) (*models.Service, error) {
	service, err := scanService(d.db.QueryRow(ctx, SelectServiceQuery, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	return service, nil
}

// CreateService adds a catalog entry.
func (d *Database) CreateService(ctx context.Context, service models.Service) error {
	_, err := d.db.Exec(ctx, InsertServiceQuery,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		float64(service.Price),
		service.Active,
		service.Zipcodes,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService persists a catalog entry.
func (d *Database) UpdateService(ctx context.Context, service models.Service) error {
	tag, err := d.db.Exec(ctx, UpdateServiceQuery,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		float64(service.Price),
		service.Active,
		service.Zipcodes,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// DeleteService removes a catalog entry.
func (d *Database) DeleteService(ctx context.Context, serviceID string) error {
	tag, err := d.db.Exec(ctx, DeleteServiceQuery, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// ToggleService flips the active flag.
func (d *Database) ToggleService(ctx context.Context, serviceID string, active bool) error {
	tag, err := d.db.Exec(ctx, ToggleServiceQuery, serviceID, active)
	if err != nil {
		return fmt.Errorf("failed to toggle service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}
