package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clero/internal/models/db_models"
	"clero/internal/models/request_models"
	"clero/pkg/utils"
)

func newAccountService(store *fakeStore, uploader *fakeUploader) AccountServiceInterface {
	return NewAccountService(
		&fakeAccountRepo{store: store},
		&fakePriestRepo{store: store},
		&fakeParishRepo{store: store},
		uploader,
	)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	registration := request_models.RegisterPriestRequest{
		Email:     "juan@x.org",
		Password:  "abcdef",
		FirstName: "Juan",
		LastName:  "Pérez",
		Phone:     "5550000",
	}

	t.Run("creates a pending priest with an unprivileged account", func(t *testing.T) {
		store := newFakeStore()
		service := newAccountService(store, &fakeUploader{})

		account, err := service.Register(ctx, registration)
		require.NoError(t, err)

		assert.Equal(t, db_models.RoleUnprivileged, account.Role)
		assert.Equal(t, db_models.StatusPending, account.PriestStatus)
		assert.Equal(t, "Juan Pérez", account.DisplayName)

		// The stored hash must verify against the original password.
		stored, err := (&fakeAccountRepo{store: store}).FindByEmail(ctx, "juan@x.org")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "abcdef"))
	})

	t.Run("duplicate email is Conflict", func(t *testing.T) {
		store := newFakeStore()
		service := newAccountService(store, &fakeUploader{})

		_, err := service.Register(ctx, registration)
		require.NoError(t, err)

		_, err = service.Register(ctx, registration)
		assert.ErrorIs(t, err, utils.ErrConflict)
	})

	t.Run("image upload failure does not fail registration", func(t *testing.T) {
		store := newFakeStore()
		uploader := &fakeUploader{err: errors.New("image host down")}
		service := newAccountService(store, uploader)

		withImage := registration
		withImage.ImageName = "juan.jpg"
		withImage.ImageData = base64.StdEncoding.EncodeToString([]byte("not really a jpeg"))

		account, err := service.Register(ctx, withImage)
		require.NoError(t, err)
		assert.Equal(t, 1, uploader.uploads)

		priest, err := (&fakePriestRepo{store: store}).FindByAccountID(ctx, mustParse(t, account.ID))
		require.NoError(t, err)
		require.NotNil(t, priest)
		assert.Empty(t, priest.ProfileImageURL)
	})

	t.Run("successful upload stores the image URL", func(t *testing.T) {
		store := newFakeStore()
		uploader := &fakeUploader{url: "https://img.example.org/juan.jpg"}
		service := newAccountService(store, uploader)

		withImage := registration
		withImage.ImageName = "juan.jpg"
		withImage.ImageData = base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))

		account, err := service.Register(ctx, withImage)
		require.NoError(t, err)

		priest, err := (&fakePriestRepo{store: store}).FindByAccountID(ctx, mustParse(t, account.ID))
		require.NoError(t, err)
		require.NotNil(t, priest)
		assert.Equal(t, "https://img.example.org/juan.jpg", priest.ProfileImageURL)
	})

	t.Run("unknown parish is Validation", func(t *testing.T) {
		store := newFakeStore()
		service := newAccountService(store, &fakeUploader{})

		bad := registration
		bad.ParishID = "2c3a2cbb-5b21-4d8b-a2a1-000000000000"
		_, err := service.Register(ctx, bad)
		assert.ErrorIs(t, err, utils.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	service := newAccountService(store, &fakeUploader{})

	_, err := service.Register(ctx, request_models.RegisterPriestRequest{
		Email:     "juan@x.org",
		Password:  "abcdef",
		FirstName: "Juan",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	t.Run("valid credentials return a session with priest status", func(t *testing.T) {
		session, err := service.Login(ctx, request_models.LoginRequest{Email: "juan@x.org", Password: "abcdef"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, db_models.RoleUnprivileged, session.Role)
		assert.Equal(t, db_models.StatusPending, session.PriestStatus)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := service.Login(ctx, request_models.LoginRequest{Email: "juan@x.org", Password: "wrong!"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		_, err := service.Login(ctx, request_models.LoginRequest{Email: "nobody@x.org", Password: "abcdef"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}
