package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createVerificationTable(t, db)
	createRestaurantTables(t, db)

	uow := NewUnitOfWork(db)
	verifications := NewVerificationRepository(db)
	restaurants := NewRestaurantRepository(db)
	settings := NewSettingsRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	restaurantID := uuid.New()

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := verifications.Create(txCtx, &entities.RestaurantVerification{
			ID: uuid.New(), UserID: userID, Status: entities.VerificationStatusApproved,
		}); err != nil {
			return err
		}
		if err := restaurants.Create(txCtx, &entities.RestaurantProfile{
			ID: restaurantID, UserID: userID, Name: "Bistro",
			Address: "1 Main St", Phone: "+1", Currency: entities.CurrencyRUB,
			QRData: "rest_tx0011aabb", IsActive: true,
		}); err != nil {
			return err
		}
		s := entities.DefaultRestaurantSettings(restaurantID)
		s.ID = uuid.New()
		return settings.Create(txCtx, s)
	})
	require.NoError(t, err)

	_, err = restaurants.GetByID(ctx, restaurantID)
	require.NoError(t, err)
	_, err = settings.GetByRestaurantID(ctx, restaurantID)
	require.NoError(t, err)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createRestaurantTables(t, db)

	uow := NewUnitOfWork(db)
	restaurants := NewRestaurantRepository(db)
	ctx := context.Background()

	restaurantID := uuid.New()
	boom := errors.New("boom")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := restaurants.Create(txCtx, &entities.RestaurantProfile{
			ID: restaurantID, UserID: uuid.New(), Name: "Bistro",
			Address: "1 Main St", Phone: "+1", Currency: entities.CurrencyRUB,
			QRData: "rest_rb0011aabb", IsActive: true,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = restaurants.GetByID(ctx, restaurantID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
