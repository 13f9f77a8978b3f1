package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
)

const (
	restaurantPageSize = 100
	staleOrderBatch    = 100
)

type orderStore interface {
	GetStalePending(ctx context.Context, restaurantID uuid.UUID, cutoff time.Time, limit int) ([]*entities.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.OrderStatus, stamp time.Time) error
}

type restaurantStore interface {
	List(ctx context.Context, limit, offset int) ([]*entities.RestaurantProfile, int64, error)
}

type settingsStore interface {
	GetByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*entities.RestaurantSettings, error)
}

// OrderTimeoutJob cancels pending orders that nobody confirmed within the
// restaurant's timeout window
type OrderTimeoutJob struct {
	orders      orderStore
	restaurants restaurantStore
	settings    settingsStore
	interval    time.Duration
	stop        chan struct{}
}

func NewOrderTimeoutJob(orders orderStore, restaurants restaurantStore, settings settingsStore, interval time.Duration) *OrderTimeoutJob {
	return &OrderTimeoutJob{
		orders:      orders,
		restaurants: restaurants,
		settings:    settings,
		interval:    interval,
		stop:        make(chan struct{}),
	}
}

func (j *OrderTimeoutJob) Start(ctx context.Context) {
	log.Println("🕐 Starting order timeout job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Order timeout job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Order timeout job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *OrderTimeoutJob) Stop() {
	close(j.stop)
}

// sweep walks all restaurants and cancels their stale pending orders. Each
// restaurant has its own timeout window.
func (j *OrderTimeoutJob) sweep(ctx context.Context) {
	now := time.Now()
	offset := 0

	for {
		restaurants, _, err := j.restaurants.List(ctx, restaurantPageSize, offset)
		if err != nil {
			log.Printf("❌ Error listing restaurants for timeout sweep: %v", err)
			return
		}
		if len(restaurants) == 0 {
			return
		}

		for _, restaurant := range restaurants {
			j.sweepRestaurant(ctx, restaurant.ID, now)
		}

		if len(restaurants) < restaurantPageSize {
			return
		}
		offset += restaurantPageSize
	}
}

func (j *OrderTimeoutJob) sweepRestaurant(ctx context.Context, restaurantID uuid.UUID, now time.Time) {
	settings, err := j.settings.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		log.Printf("❌ Error loading settings for restaurant %s: %v", restaurantID, err)
		return
	}
	if settings.OrderTimeoutMinutes <= 0 {
		return
	}

	cutoff := now.Add(-time.Duration(settings.OrderTimeoutMinutes) * time.Minute)
	stale, err := j.orders.GetStalePending(ctx, restaurantID, cutoff, staleOrderBatch)
	if err != nil {
		log.Printf("❌ Error fetching stale pending orders: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	log.Printf("🔄 Cancelling %d timed out orders for restaurant %s...", len(stale), restaurantID)

	cancelled := 0
	for _, order := range stale {
		err := j.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPending, entities.OrderStatusCancelled, now)
		if err != nil {
			// Lost the race against a concurrent confirmation, nothing to do
			if errors.Is(err, domainerrors.ErrInvalidTransition) {
				continue
			}
			log.Printf("❌ Error cancelling order %s: %v", order.ID, err)
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		log.Printf("✅ Cancelled %d timed out orders", cancelled)
	}
}
