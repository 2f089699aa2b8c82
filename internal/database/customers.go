package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

var ErrCustomerNotFound = errors.New("customer does not exist")

const (
	SelectCustomersQuery = `
		SELECT
			id,
			name,
			email,
			phone_number,
			status
		FROM
			customers
		ORDER BY
			name
	`
	UpdateCustomerStatusQuery = `
		UPDATE
			customers
		SET
			status = $2
		WHERE
			id = $1
	`
)

// FindAllCustomers returns every customer account.
func (d *Database) FindAllCustomers(ctx context.Context) (*[]models.Customer, error) {
	rows, err := d.db.Query(ctx, SelectCustomersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	defer rows.Close()

	var result []models.Customer
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.PhoneNumber, &customer.Status); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		result = append(result, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return &result, nil
}

// UpdateCustomerStatus flips a customer between Active and Inactive.
func (d *Database) UpdateCustomerStatus(ctx context.Context, customerID, status string) error {
	tag, err := d.db.Exec(ctx, UpdateCustomerStatusQuery, customerID, status)
	if err != nil {
		return fmt.Errorf("failed to update customer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
