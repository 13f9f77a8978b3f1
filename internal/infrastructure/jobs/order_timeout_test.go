package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
)

type orderStoreStub struct {
	stale      []*entities.Order
	getErr     error
	updateErr  error
	updated    []uuid.UUID
	lastCutoff time.Time
}

func (s *orderStoreStub) GetStalePending(_ context.Context, _ uuid.UUID, cutoff time.Time, _ int) ([]*entities.Order, error) {
	s.lastCutoff = cutoff
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stale, nil
}

func (s *orderStoreStub) UpdateStatus(_ context.Context, id uuid.UUID, expected, next entities.OrderStatus, _ time.Time) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if expected != entities.OrderStatusPending || next != entities.OrderStatusCancelled {
		return domainerrors.ErrInvalidTransition
	}
	s.updated = append(s.updated, id)
	return nil
}

type restaurantStoreStub struct {
	restaurants []*entities.RestaurantProfile
	err         error
}

func (s *restaurantStoreStub) List(_ context.Context, _, offset int) ([]*entities.RestaurantProfile, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	if offset > 0 {
		return nil, int64(len(s.restaurants)), nil
	}
	return s.restaurants, int64(len(s.restaurants)), nil
}

type settingsStoreStub struct {
	settings map[uuid.UUID]*entities.RestaurantSettings
	err      error
}

func (s *settingsStoreStub) GetByRestaurantID(_ context.Context, restaurantID uuid.UUID) (*entities.RestaurantSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.settings[restaurantID], nil
}

func newTimeoutJobForTest(orders *orderStoreStub, restaurants *restaurantStoreStub, settings *settingsStoreStub) *OrderTimeoutJob {
	return NewOrderTimeoutJob(orders, restaurants, settings, time.Millisecond)
}

func TestSweep_CancelsStaleOrders(t *testing.T) {
	restaurantID := uuid.New()
	staleID := uuid.New()

	orders := &orderStoreStub{stale: []*entities.Order{{ID: staleID, Status: entities.OrderStatusPending}}}
	restaurants := &restaurantStoreStub{restaurants: []*entities.RestaurantProfile{{ID: restaurantID}}}
	settings := &settingsStoreStub{settings: map[uuid.UUID]*entities.RestaurantSettings{
		restaurantID: {RestaurantID: restaurantID, OrderTimeoutMinutes: 30},
	}}

	job := newTimeoutJobForTest(orders, restaurants, settings)
	job.sweep(context.Background())

	require.Equal(t, []uuid.UUID{staleID}, orders.updated)
	require.WithinDuration(t, time.Now().Add(-30*time.Minute), orders.lastCutoff, 5*time.Second)
}

func TestSweep_SkipsDisabledTimeout(t *testing.T) {
	restaurantID := uuid.New()

	orders := &orderStoreStub{stale: []*entities.Order{{ID: uuid.New()}}}
	restaurants := &restaurantStoreStub{restaurants: []*entities.RestaurantProfile{{ID: restaurantID}}}
	settings := &settingsStoreStub{settings: map[uuid.UUID]*entities.RestaurantSettings{
		restaurantID: {RestaurantID: restaurantID, OrderTimeoutMinutes: 0},
	}}

	job := newTimeoutJobForTest(orders, restaurants, settings)
	job.sweep(context.Background())

	require.Empty(t, orders.updated)
}

func TestSweep_ToleratesRacedConfirmation(t *testing.T) {
	restaurantID := uuid.New()

	orders := &orderStoreStub{
		stale:     []*entities.Order{{ID: uuid.New()}},
		updateErr: domainerrors.ErrInvalidTransition,
	}
	restaurants := &restaurantStoreStub{restaurants: []*entities.RestaurantProfile{{ID: restaurantID}}}
	settings := &settingsStoreStub{settings: map[uuid.UUID]*entities.RestaurantSettings{
		restaurantID: {RestaurantID: restaurantID, OrderTimeoutMinutes: 15},
	}}

	job := newTimeoutJobForTest(orders, restaurants, settings)
	job.sweep(context.Background())

	require.Empty(t, orders.updated)
}

func TestSweep_ListError(t *testing.T) {
	orders := &orderStoreStub{}
	restaurants := &restaurantStoreStub{err: errors.New("db down")}
	settings := &settingsStoreStub{}

	job := newTimeoutJobForTest(orders, restaurants, settings)
	job.sweep(context.Background())

	require.Empty(t, orders.updated)
}

func TestStartStop_StopsByContext(t *testing.T) {
	job := newTimeoutJobForTest(&orderStoreStub{}, &restaurantStoreStub{}, &settingsStoreStub{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	job := newTimeoutJobForTest(&orderStoreStub{}, &restaurantStoreStub{}, &settingsStoreStub{})

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
