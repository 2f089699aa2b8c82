package services

import (
	"context"
	"errors"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

// RiderService manages rider accounts: listing, profile edits and the
// online flag riders toggle from the mobile app.
type RiderService struct {
	storage riderStorage
}

type riderStorage interface {
	FindAllRiders(ctx context.Context) (*[]models.Rider, error)
	FindRider(ctx context.Context, riderID string) (*models.Rider, error)
	SetRiderOnline(ctx context.Context, riderID string, online bool) error
	UpdateRider(ctx context.Context, rider *models.Rider, replaceAreas bool) error
}

func NewRiderService(storage riderStorage) *RiderService {
	return &RiderService{storage: storage}
}

// GetRiders returns every rider with its service-area set.
func (r *RiderService) GetRiders(ctx context.Context) ([]models.Rider, error) {
	riders, err := r.storage.FindAllRiders(ctx)
	if err != nil {
		return []models.Rider{}, err
	}

	if riders == nil {
		return []models.Rider{}, nil
	}

	return *riders, nil
}

// SetOnline flips the online flag. This is separate from the availability
// status used for assignment eligibility.
func (r *RiderService) SetOnline(ctx context.Context, riderID string, online bool) error {
	if err := r.storage.SetRiderOnline(ctx, riderID, online); err != nil {
		if errors.Is(err, database.ErrRiderNotFound) {
			return ErrRiderIsNotExist
		}
		return err
	}
	return nil
}

// UpdateRider applies the supplied fields on top of the current record and
// persists the result, replacing the service-area set only when one is
// sent.
func (r *RiderService) UpdateRider(ctx context.Context, riderID string, update models.RiderUpdate) (*models.Rider, error) {
	rider, err := r.storage.FindRider(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if rider == nil {
		return nil, ErrRiderIsNotExist
	}

	if update.Name != nil {
		rider.Name = *update.Name
	}
	if update.Email != nil {
		rider.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		rider.PhoneNumber = *update.PhoneNumber
	}
	if update.VehicleType != nil {
		rider.VehicleType = *update.VehicleType
	}
	if update.MaxCapacity != nil {
		rider.MaxCapacity = *update.MaxCapacity
	}
	if update.Status != nil {
		rider.Status = *update.Status
	}

	replaceAreas := update.ServiceAreas != nil
	if replaceAreas {
		rider.ServiceAreas = update.ServiceAreas
	}

	if err := r.storage.UpdateRider(ctx, rider, replaceAreas); err != nil {
		if errors.Is(err, database.ErrRiderNotFound) {
			return nil, ErrRiderIsNotExist
		}
		return nil, err
	}

	return r.storage.FindRider(ctx, riderID)
}
