package services

import (
	"context"
	"errors"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

var (
	ErrCustomerIsNotExist    = errors.New("customer does not exist")
	ErrInvalidCustomerStatus = errors.New("customer status is invalid")
)

// CustomerService manages customer accounts from the console side.
type CustomerService struct {
	storage customerStorage
}

type customerStorage interface {
	FindAllCustomers(ctx context.Context) (*[]models.Customer, error)
	UpdateCustomerStatus(ctx context.Context, customerID, status string) error
}

func NewCustomerService(storage customerStorage) *CustomerService {
	return &CustomerService{storage: storage}
}

// GetCustomers returns every customer account.
func (c *CustomerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := c.storage.FindAllCustomers(ctx)
	if err != nil {
		return []models.Customer{}, err
	}

	if customers == nil {
		return []models.Customer{}, nil
	}

	return *customers, nil
}

// SetStatus flips a customer between Active and Inactive; anything else is
// rejected.
func (c *CustomerService) SetStatus(ctx context.Context, customerID, status string) error {
	if status != models.CustomerActive && status != models.CustomerInactive {
		return ErrInvalidCustomerStatus
	}

	if err := c.storage.UpdateCustomerStatus(ctx, customerID, status); err != nil {
		if errors.Is(err, database.ErrCustomerNotFound) {
			return ErrCustomerIsNotExist
		}
		return err
	}
	return nil
}
