package repositories

import (
	"context"

	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
)

// RestaurantRepository defines restaurant profile data operations
type RestaurantRepository interface {
	Create(ctx context.Context, profile *entities.RestaurantProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RestaurantProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error)
	GetByQRData(ctx context.Context, qrData string) (*entities.RestaurantProfile, error)
	Update(ctx context.Context, profile *entities.RestaurantProfile) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entities.RestaurantProfile, int64, error)
}

// SettingsRepository defines restaurant settings data operations
type SettingsRepository interface {
	Create(ctx context.Context, settings *entities.RestaurantSettings) error
	GetByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*entities.RestaurantSettings, error)
	Update(ctx context.Context, settings *entities.RestaurantSettings) error
}
