package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clero/internal/models/db_models"
	"clero/internal/models/request_models"
	"clero/pkg/utils"
)

func TestCityCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name is Conflict", func(t *testing.T) {
		store := newFakeStore()
		service := NewCityService(&fakeCityRepo{store: store})

		_, err := service.Create(ctx, request_models.CityRequest{Name: "Springfield", State: "Iowa"})
		require.NoError(t, err)

		_, err = service.Create(ctx, request_models.CityRequest{Name: "Springfield", State: "Iowa"})
		assert.ErrorIs(t, err, utils.ErrConflict)
	})

	t.Run("rename onto another city is Conflict, keeping own name is not", func(t *testing.T) {
		store := newFakeStore()
		service := NewCityService(&fakeCityRepo{store: store})

		springfield, err := service.Create(ctx, request_models.CityRequest{Name: "Springfield", State: "Iowa"})
		require.NoError(t, err)
		_, err = service.Create(ctx, request_models.CityRequest{Name: "Shelbyville", State: "Iowa"})
		require.NoError(t, err)

		id := uuid.MustParse(springfield.ID)

		_, err = service.Update(ctx, id, request_models.CityRequest{Name: "Shelbyville", State: "Iowa"})
		assert.ErrorIs(t, err, utils.ErrConflict)

		updated, err := service.Update(ctx, id, request_models.CityRequest{Name: "Springfield", State: "Illinois"})
		require.NoError(t, err)
		assert.Equal(t, "Illinois", updated.State)
	})

	t.Run("delete is blocked while parishes exist", func(t *testing.T) {
		store := newFakeStore()
		cityService := NewCityService(&fakeCityRepo{store: store})
		parishService := NewParishService(&fakeParishRepo{store: store}, &fakeCityRepo{store: store})

		city, err := cityService.Create(ctx, request_models.CityRequest{Name: "Springfield", State: "Iowa"})
		require.NoError(t, err)
		cityID := uuid.MustParse(city.ID)

		parish, err := parishService.Create(ctx, request_models.ParishRequest{Name: "Saint X", CityID: city.ID})
		require.NoError(t, err)

		err = cityService.Delete(ctx, cityID)
		assert.ErrorIs(t, err, utils.ErrInvalidState)

		require.NoError(t, parishService.Delete(ctx, uuid.MustParse(parish.ID)))
		require.NoError(t, cityService.Delete(ctx, cityID))
	})
}

func TestParishCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("name is unique per city only", func(t *testing.T) {
		store := newFakeStore()
		cityService := NewCityService(&fakeCityRepo{store: store})
		parishService := NewParishService(&fakeParishRepo{store: store}, &fakeCityRepo{store: store})

		springfield, err := cityService.Create(ctx, request_models.CityRequest{Name: "Springfield", State: "Iowa"})
		require.NoError(t, err)
		shelbyville, err := cityService.Create(ctx, request_models.CityRequest{Name: "Shelbyville", State: "Iowa"})
		require.NoError(t, err)

		_, err = parishService.Create(ctx, request_models.ParishRequest{Name: "Saint X", CityID: springfield.ID})
		require.NoError(t, err)

		_, err = parishService.Create(ctx, request_models.ParishRequest{Name: "Saint X", CityID: springfield.ID})
		assert.ErrorIs(t, err, utils.ErrConflict)

		_, err = parishService.Create(ctx, request_models.ParishRequest{Name: "Saint X", CityID: shelbyville.ID})
		assert.NoError(t, err)
	})

	t.Run("unknown city is Validation", func(t *testing.T) {
		store := newFakeStore()
		parishService := NewParishService(&fakeParishRepo{store: store}, &fakeCityRepo{store: store})

		_, err := parishService.Create(ctx, request_models.ParishRequest{Name: "Saint X", CityID: uuid.New().String()})
		assert.ErrorIs(t, err, utils.ErrValidation)
	})

	t.Run("delete is blocked while priests are assigned", func(t *testing.T) {
		store := newFakeStore()
		cityService := NewCityService(&fakeCityRepo{store: store})
		parishService := NewParishService(&fakeParishRepo{store: store}, &fakeCityRepo{store: store})

		city, err := cityService.Create(ctx, request_models.CityRequest{Name: "Springfield", State: "Iowa"})
		require.NoError(t, err)
		parish, err := parishService.Create(ctx, request_models.ParishRequest{Name: "Saint X", CityID: city.ID})
		require.NoError(t, err)

		parishID := uuid.MustParse(parish.ID)
		_, priest := seedPendingPriest(store, "juan@x.org")
		priest.ParishID = &parishID

		err = parishService.Delete(ctx, parishID)
		assert.ErrorIs(t, err, utils.ErrInvalidState)

		priest.ParishID = nil
		assert.NoError(t, parishService.Delete(ctx, parishID))
	})
}

func TestSpecialtyCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name is Conflict", func(t *testing.T) {
		store := newFakeStore()
		service := NewSpecialtyService(&fakeSpecialtyRepo{store: store})

		_, err := service.Create(ctx, request_models.SpecialtyRequest{Name: "Liturgy"})
		require.NoError(t, err)

		_, err = service.Create(ctx, request_models.SpecialtyRequest{Name: "Liturgy"})
		assert.ErrorIs(t, err, utils.ErrConflict)
	})

	t.Run("delete is blocked while priests are linked", func(t *testing.T) {
		store := newFakeStore()
		service := NewSpecialtyService(&fakeSpecialtyRepo{store: store})

		created, err := service.Create(ctx, request_models.SpecialtyRequest{Name: "Liturgy"})
		require.NoError(t, err)
		specialtyID := uuid.MustParse(created.ID)

		_, priest := seedPendingPriest(store, "juan@x.org")
		priest.Specialties = []db_models.Specialty{*store.specialties[specialtyID]}

		err = service.Delete(ctx, specialtyID)
		assert.ErrorIs(t, err, utils.ErrInvalidState)

		priest.Specialties = nil
		assert.NoError(t, service.Delete(ctx, specialtyID))
	})

	t.Run("unknown specialty delete is NotFound", func(t *testing.T) {
		store := newFakeStore()
		service := NewSpecialtyService(&fakeSpecialtyRepo{store: store})

		err := service.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})
}
