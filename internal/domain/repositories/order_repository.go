package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.Order, error)
	List(ctx context.Context, restaurantID uuid.UUID, filter *entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error)

	// UpdateStatus moves an order from expected to next atomically. It
	// returns ErrInvalidTransition when the row no longer holds expected.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.OrderStatus, stamp time.Time) error

	SetPaid(ctx context.Context, id uuid.UUID, method entities.PaymentMethod, paidAt time.Time) error
	SetUnpaid(ctx context.Context, id uuid.UUID) error

	Stats(ctx context.Context, restaurantID uuid.UUID, dayStart time.Time) (*entities.OrderStats, error)

	// GetStalePending returns pending orders created before the cutoff for
	// the given restaurant, used by the timeout job.
	GetStalePending(ctx context.Context, restaurantID uuid.UUID, cutoff time.Time, limit int) ([]*entities.Order, error)
}
