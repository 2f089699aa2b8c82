package services

import (
	"context"
	"errors"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
)

var (
	ErrServiceIsNotExist = errors.New("service does not exist")
	ErrInvalidService    = errors.New("service is invalid")
)

// CatalogService manages the laundry-service catalog.
type CatalogService struct {
	storage catalogStorage
}

type catalogStorage interface {
	FindAllServices(ctx context.Context) (*[]models.Service, error)
	FindService(ctx context.Context, serviceID string) (*models.Service, error)
	CreateService(ctx context.Context, service models.Service) error
	UpdateService(ctx context.Context, service models.Service) error
	DeleteService(ctx context.Context, serviceID string) error
	ToggleService(ctx context.Context, serviceID string, active bool) error
}

func NewCatalogService(storage catalogStorage) *CatalogService {
	return &CatalogService{storage: storage}
}

// GetServices returns the whole catalog.
func (c *CatalogService) GetServices(ctx context.Context) ([]models.Service, error) {
	services, err := c.storage.FindAllServices(ctx)
	if err != nil {
		return []models.Service{}, err
	}

	if services == nil {
		return []models.Service{}, nil
	}

	return *services, nil
}

// CreateService validates and stores a catalog entry.
func (c *CatalogService) CreateService(ctx context.Context, service models.Service) (*models.Service, error) {
	if service.Name == "" {
		return nil, ErrInvalidService
	}

	service.ID = utils.NewID("SRV")

	if err := c.storage.CreateService(ctx, service); err != nil {
		return nil, err
	}

	return c.storage.FindService(ctx, service.ID)
}

// UpdateService persists a catalog entry.
func (c *CatalogService) UpdateService(ctx context.Context, serviceID string, service models.Service) (*models.Service, error) {
	service.ID = serviceID
	if service.Name == "" {
		return nil, ErrInvalidService
	}

	if err := c.storage.UpdateService(ctx, service); err != nil {
		if errors.Is(err, database.ErrServiceNotFound) {
			return nil, ErrServiceIsNotExist
		}
		return nil, err
	}

	return c.storage.FindService(ctx, serviceID)
}

// DeleteService removes a catalog entry.
func (c *CatalogService) DeleteService(ctx context.Context, serviceID string) error {
	if err := c.storage.DeleteService(ctx, serviceID); err != nil {
		if errors.Is(err, database.ErrServiceNotFound) {
			return ErrServiceIsNotExist
		}
		return err
	}
	return nil
}

// ToggleService flips the active flag.
func (c *CatalogService) ToggleService(ctx context.Context, serviceID string, active bool) error {
	if err := c.storage.ToggleService(ctx, serviceID, active); err != nil {
		if errors.Is(err, database.ErrServiceNotFound) {
			return ErrServiceIsNotExist
		}
		return err
	}
	return nil
}
