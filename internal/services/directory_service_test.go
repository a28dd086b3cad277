package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clero/internal/models/db_models"
	"clero/internal/repositories"
)

func newDirectoryService(store *fakeStore) DirectoryServiceInterface {
	return NewDirectoryService(&fakeDirectoryRepo{store: store})
}

func TestDirectoryListings(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()

	city := &db_models.City{Name: "Springfield", State: "Iowa"}
	city.ID = uuid.New()
	store.cities[city.ID] = city

	parish := &db_models.Parish{Name: "Saint X", CityID: city.ID, City: city}
	parish.ID = uuid.New()
	store.parishes[parish.ID] = parish

	_, approved := seedApprovedPriest(store, "juan@x.org")
	approved.Phone = "5551234"
	approved.Biography = "Ordained 2008"
	approved.ParishID = &parish.ID

	seedPendingPriest(store, "pending@x.org")
	_, rejected := seedPendingPriest(store, "rejected@x.org")
	rejected.Status = db_models.StatusRejected

	service := newDirectoryService(store)

	t.Run("internal listing includes contact fields", func(t *testing.T) {
		priests, err := service.Internal(ctx)
		require.NoError(t, err)
		require.Len(t, priests, 1)

		assert.Equal(t, "juan@x.org", priests[0].Email)
		assert.Equal(t, "5551234", priests[0].Phone)
		assert.Equal(t, "Saint X", priests[0].ParishName)
		assert.Equal(t, "Springfield", priests[0].CityName)
	})

	t.Run("public listing contains only approved priests and no contact data", func(t *testing.T) {
		priests, err := service.Public(ctx, repositories.DirectoryFilter{})
		require.NoError(t, err)
		require.Len(t, priests, 1)
		assert.Equal(t, "Juan", priests[0].FirstName)

		// The serialized entry must not leak phone, email or biography
		// under any key.
		raw, err := json.Marshal(priests[0])
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "5551234")
		assert.NotContains(t, string(raw), "juan@x.org")
		assert.NotContains(t, string(raw), "Ordained 2008")
	})

	t.Run("limit caps the result count", func(t *testing.T) {
		priests, err := service.Public(ctx, repositories.DirectoryFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, priests, 1)
	})

	t.Run("parish options cover only parishes with approved priests", func(t *testing.T) {
		empty := &db_models.Parish{Name: "Saint Y", CityID: city.ID}
		empty.ID = uuid.New()
		store.parishes[empty.ID] = empty

		options, err := service.PublicParishes(ctx)
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, "Saint X", options[0].Name)
	})
}
