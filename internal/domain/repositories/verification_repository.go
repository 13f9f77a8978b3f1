package repositories

import (
	"context"

	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
)

// VerificationRepository defines restaurant application data operations
type VerificationRepository interface {
	Create(ctx context.Context, verification *entities.RestaurantVerification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RestaurantVerification, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.RestaurantVerification, error)
	// Update persists the application only if the row still holds the expected
	// status; a stale write returns ErrInvalidVerificationTransition.
	Update(ctx context.Context, verification *entities.RestaurantVerification, expected entities.VerificationStatus) error
	List(ctx context.Context, filter *entities.VerificationFilter, limit, offset int) ([]*entities.RestaurantVerification, int64, error)
	CountPending(ctx context.Context) (int64, error)
}
