package services

import (
	"context"
	"errors"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
)

var (
	ErrAreaIsNotExist    = errors.New("service area does not exist")
	ErrAreaIsReferenced  = errors.New("service area is referenced by riders or services")
	ErrDuplicatePostcode = errors.New("service area already exists for this postcode")
	ErrInvalidArea       = errors.New("service area is invalid")
)

// AreaService manages the geographic coverage units.
type AreaService struct {
	storage areaStorage
}

type areaStorage interface {
	FindAllAreas(ctx context.Context) (*[]models.ServiceArea, error)
	FindArea(ctx context.Context, areaID string) (*models.ServiceArea, error)
	CreateArea(ctx context.Context, area models.ServiceArea) error
	UpdateArea(ctx context.Context, area models.ServiceArea) error
	DeleteArea(ctx context.Context, areaID string) error
	ToggleArea(ctx context.Context, areaID string, active bool) error
}

func NewAreaService(storage areaStorage) *AreaService {
	return &AreaService{storage: storage}
}

func validateArea(area models.ServiceArea) error {
	if area.Postcode == "" || area.Name == "" {
		return ErrInvalidArea
	}
	if len(area.ServiceDays) == 0 {
		return ErrInvalidArea
	}
	switch area.Coverage {
	case models.CoverageFull, models.CoveragePartial, models.CoverageLimited:
	default:
		return ErrInvalidArea
	}
	return nil
}

// GetAreas returns every coverage unit with its reference counts.
func (a *AreaService) GetAreas(ctx context.Context) ([]models.ServiceArea, error) {
	areas, err := a.storage.FindAllAreas(ctx)
	if err != nil {
		return []models.ServiceArea{}, err
	}

	if areas == nil {
		return []models.ServiceArea{}, nil
	}

	return *areas, nil
}

// CreateArea validates and stores a new coverage unit.
func (a *AreaService) CreateArea(ctx context.Context, area models.ServiceArea) (*models.ServiceArea, error) {
	if err := validateArea(area); err != nil {
		return nil, err
	}

	area.ID = utils.NewID("SA")

	if err := a.storage.CreateArea(ctx, area); err != nil {
		if errors.Is(err, database.ErrDuplicateArea) {
			return nil, ErrDuplicatePostcode
		}
		return nil, err
	}

	return a.storage.FindArea(ctx, area.ID)
}

// UpdateArea persists edits; the postcode key never changes.
func (a *AreaService) UpdateArea(ctx context.Context, areaID string, area models.ServiceArea) (*models.ServiceArea, error) {
	area.ID = areaID
	if err := validateArea(area); err != nil {
		return nil, err
	}

	if err := a.storage.UpdateArea(ctx, area); err != nil {
		if errors.Is(err, database.ErrAreaNotFound) {
			return nil, ErrAreaIsNotExist
		}
		return nil, err
	}

	return a.storage.FindArea(ctx, areaID)
}

// DeleteArea refuses while riders or services still reference the
// postcode; the console greys the action out, the server enforces it.
func (a *AreaService) DeleteArea(ctx context.Context, areaID string) error {
	if err := a.storage.DeleteArea(ctx, areaID); err != nil {
		if errors.Is(err, database.ErrAreaNotFound) {
			return ErrAreaIsNotExist
		}
		if errors.Is(err, database.ErrAreaReferenced) {
			return ErrAreaIsReferenced
		}
		return err
	}
	return nil
}

// ToggleArea flips the active flag.
func (a *AreaService) ToggleArea(ctx context.Context, areaID string, active bool) error {
	if err := a.storage.ToggleArea(ctx, areaID, active); err != nil {
		if errors.Is(err, database.ErrAreaNotFound) {
			return ErrAreaIsNotExist
		}
		return err
	}
	return nil
}
