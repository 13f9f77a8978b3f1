package repositories

import (
	"context"

	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
)

// CategoryRepository defines menu category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, activeOnly bool) ([]*entities.Category, error)
}

// DishRepository defines dish data operations. GetByID and ListByCategory
// load dish options.
type DishRepository interface {
	Create(ctx context.Context, dish *entities.Dish) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Dish, error)
	Update(ctx context.Context, dish *entities.Dish) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByCategory(ctx context.Context, categoryID uuid.UUID, availableOnly bool) ([]*entities.Dish, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, availableOnly bool) ([]*entities.Dish, error)

	CreateOption(ctx context.Context, option *entities.DishOption) error
	UpdateOption(ctx context.Context, option *entities.DishOption) error
	DeleteOption(ctx context.Context, id uuid.UUID) error
}
