package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbox-tech/Freshbox-admin/internal/database"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

type areaStorageStub struct {
	areas map[string]*models.ServiceArea

	createErr error
	deleteErr error
}

func (s *areaStorageStub) FindAllAreas(ctx context.Context) (*[]models.ServiceArea, error) {
	all := make([]models.ServiceArea, 0, len(s.areas))
	for _, area := range s.areas {
		all = append(all, *area)
	}
	return &all, nil
}

func (s *areaStorageStub) FindArea(ctx context.Context, areaID string) (*models.ServiceArea, error) {
	area, ok := s.areas[areaID]
	if !ok {
		return nil, nil
	}
	copied := *area
	return &copied, nil
}

func (s *areaStorageStub) CreateArea(ctx context.Context, area models.ServiceArea) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.areas[area.ID] = &area
	return nil
}

func (s *areaStorageStub) UpdateArea(ctx context.Context, area models.ServiceArea) error {
	if _, ok := s.areas[area.ID]; !ok {
		return database.ErrAreaNotFound
	}
	s.areas[area.ID] = &area
	return nil
}

func (s *areaStorageStub) DeleteArea(ctx context.Context, areaID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.areas[areaID]; !ok {
		return database.ErrAreaNotFound
	}
	delete(s.areas, areaID)
	return nil
}

func (s *areaStorageStub) ToggleArea(ctx context.Context, areaID string, active bool) error {
	area, ok := s.areas[areaID]
	if !ok {
		return database.ErrAreaNotFound
	}
	area.Active = active
	return nil
}

func validFixtureArea() models.ServiceArea {
	return models.ServiceArea{
		Postcode:    "75001",
		Name:        "Downtown",
		City:        "Dallas",
		ServiceDays: []string{"Mon", "Wed", "Fri"},
		Coverage:    models.CoverageFull,
	}
}

func TestCreateArea(t *testing.T) {
	t.Run("creates a valid area with a generated id", func(t *testing.T) {
		storage := &areaStorageStub{areas: map[string]*models.ServiceArea{}}
		service := NewAreaService(storage)

		area, err := service.CreateArea(context.Background(), validFixtureArea())
		require.NoError(t, err)
		assert.NotEmpty(t, area.ID)
		assert.Equal(t, "75001", area.Postcode)
	})

	t.Run("rejects missing postcode, name, days or bad coverage", func(t *testing.T) {
		storage := &areaStorageStub{areas: map[string]*models.ServiceArea{}}
		service := NewAreaService(storage)

		for _, mutate := range []func(*models.ServiceArea){
			func(a *models.ServiceArea) { a.Postcode = "" },
			func(a *models.ServiceArea) { a.Name = "" },
			func(a *models.ServiceArea) { a.ServiceDays = nil },
			func(a *models.ServiceArea) { a.Coverage = "Total" },
		} {
			area := validFixtureArea()
			mutate(&area)
			_, err := service.CreateArea(context.Background(), area)
			assert.ErrorIs(t, err, ErrInvalidArea)
		}
	})

	t.Run("maps duplicate postcode", func(t *testing.T) {
		storage := &areaStorageStub{areas: map[string]*models.ServiceArea{}, createErr: database.ErrDuplicateArea}
		service := NewAreaService(storage)

		_, err := service.CreateArea(context.Background(), validFixtureArea())
		assert.ErrorIs(t, err, ErrDuplicatePostcode)
	})
}

func TestDeleteArea(t *testing.T) {
	t.Run("refuses while referenced", func(t *testing.T) {
		storage := &areaStorageStub{
			areas:     map[string]*models.ServiceArea{"SA-1": {ID: "SA-1"}},
			deleteErr: database.ErrAreaReferenced,
		}
		service := NewAreaService(storage)

		assert.ErrorIs(t, service.DeleteArea(context.Background(), "SA-1"), ErrAreaIsReferenced)
	})

	t.Run("deletes an unreferenced area", func(t *testing.T) {
		storage := &areaStorageStub{areas: map[string]*models.ServiceArea{"SA-1": {ID: "SA-1"}}}
		service := NewAreaService(storage)

		require.NoError(t, service.DeleteArea(context.Background(), "SA-1"))
		assert.Empty(t, storage.areas)
	})

	t.Run("maps unknown area", func(t *testing.T) {
		storage := &areaStorageStub{areas: map[string]*models.ServiceArea{}}
		service := NewAreaService(storage)

		assert.ErrorIs(t, service.DeleteArea(context.Background(), "SA-404"), ErrAreaIsNotExist)
	})
}
