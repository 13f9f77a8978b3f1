package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/domain/repositories"
	"qrmenu.backend/pkg/utils"
)

// PublicMenu is the read model served to customers scanning a QR code
type PublicMenu struct {
	Restaurant *entities.RestaurantProfile `json:"restaurant"`
	Categories []*entities.Category        `json:"categories"`
}

// MenuUsecase handles menu management and the public menu read model
type MenuUsecase struct {
	restaurantRepo repositories.RestaurantRepository
	categoryRepo   repositories.CategoryRepository
	dishRepo       repositories.DishRepository
}

// NewMenuUsecase creates a new menu usecase
func NewMenuUsecase(
	restaurantRepo repositories.RestaurantRepository,
	categoryRepo repositories.CategoryRepository,
	dishRepo repositories.DishRepository,
) *MenuUsecase {
	return &MenuUsecase{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		dishRepo:       dishRepo,
	}
}

// PublicMenu returns the customer-facing menu behind a QR code: active
// categories with their available dishes and options.
func (u *MenuUsecase) PublicMenu(ctx context.Context, qrData string) (*PublicMenu, error) {
	restaurant, err := u.restaurantRepo.GetByQRData(ctx, qrData)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, domainerrors.ErrRestaurantInactive
	}

	categories, err := u.categoryRepo.ListByRestaurant(ctx, restaurant.ID, true)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		dishes, err := u.dishRepo.ListByCategory(ctx, category.ID, true)
		if err != nil {
			return nil, err
		}
		category.Dishes = dishes
	}

	return &PublicMenu{
		Restaurant: restaurant,
		Categories: categories,
	}, nil
}

// PublicDish returns a single available dish with its options, scoped to the
// restaurant behind the QR code.
func (u *MenuUsecase) PublicDish(ctx context.Context, qrData string, dishID uuid.UUID) (*entities.Dish, error) {
	restaurant, err := u.restaurantRepo.GetByQRData(ctx, qrData)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, domainerrors.ErrRestaurantInactive
	}

	dish, err := u.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if dish.RestaurantID != restaurant.ID || !dish.IsAvailable {
		return nil, domainerrors.ErrNotFound
	}
	return dish, nil
}

// ListCategories returns all of the owner's categories, inactive included
func (u *MenuUsecase) ListCategories(ctx context.Context, userID uuid.UUID) ([]*entities.Category, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.categoryRepo.ListByRestaurant(ctx, restaurant.ID, false)
}

// CreateCategory adds a menu category to the owner's restaurant
func (u *MenuUsecase) CreateCategory(ctx context.Context, userID uuid.UUID, input *entities.CreateCategoryInput) (*entities.Category, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	category := &entities.Category{
		ID:           utils.GenerateUUIDv7(),
		RestaurantID: restaurant.ID,
		Name:         input.Name,
		Description:  input.Description,
		SortOrder:    input.SortOrder,
		IsActive:     true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory edits an owned category
func (u *MenuUsecase) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, input *entities.CreateCategoryInput) (*entities.Category, error) {
	category, err := u.ownedCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description
	category.SortOrder = input.SortOrder
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes an owned category
func (u *MenuUsecase) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	if _, err := u.ownedCategory(ctx, userID, categoryID); err != nil {
		return err
	}
	return u.categoryRepo.SoftDelete(ctx, categoryID)
}

// ListDishes returns all of the owner's dishes, unavailable included
func (u *MenuUsecase) ListDishes(ctx context.Context, userID uuid.UUID) ([]*entities.Dish, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.dishRepo.ListByRestaurant(ctx, restaurant.ID, false)
}

// CreateDish adds a dish under one of the owner's categories
func (u *MenuUsecase) CreateDish(ctx context.Context, userID uuid.UUID, input *entities.CreateDishInput) (*entities.Dish, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	category, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.RestaurantID != restaurant.ID {
		return nil, domainerrors.ErrForbidden
	}

	price, err := parseAmount(input.Price)
	if err != nil {
		return nil, err
	}

	dish := &entities.Dish{
		ID:           utils.GenerateUUIDv7(),
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		Name:         input.Name,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Price:        price,
		Weight:       input.Weight,
		CookingTime:  input.CookingTime,
		SortOrder:    input.SortOrder,
		IsAvailable:  true,
		IsPopular:    input.IsPopular,
		IsNew:        input.IsNew,
		IsSpicy:      input.IsSpicy,
		IsVegetarian: input.IsVegetarian,
		IsVegan:      input.IsVegan,
	}
	if input.IsAvailable != nil {
		dish.IsAvailable = *input.IsAvailable
	}

	if err := u.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// UpdateDish edits an owned dish, including moving it between categories
func (u *MenuUsecase) UpdateDish(ctx context.Context, userID, dishID uuid.UUID, input *entities.CreateDishInput) (*entities.Dish, error) {
	restaurant, dish, err := u.ownedDish(ctx, userID, dishID)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if categoryID != dish.CategoryID {
		category, err := u.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if category.RestaurantID != restaurant.ID {
			return nil, domainerrors.ErrForbidden
		}
		dish.CategoryID = category.ID
	}

	price, err := parseAmount(input.Price)
	if err != nil {
		return nil, err
	}

	dish.Name = input.Name
	dish.Description = input.Description
	dish.Ingredients = input.Ingredients
	dish.Price = price
	dish.Weight = input.Weight
	dish.CookingTime = input.CookingTime
	dish.SortOrder = input.SortOrder
	dish.IsPopular = input.IsPopular
	dish.IsNew = input.IsNew
	dish.IsSpicy = input.IsSpicy
	dish.IsVegetarian = input.IsVegetarian
	dish.IsVegan = input.IsVegan
	if input.IsAvailable != nil {
		dish.IsAvailable = *input.IsAvailable
	}

	if err := u.dishRepo.Update(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// DeleteDish soft-deletes an owned dish
func (u *MenuUsecase) DeleteDish(ctx context.Context, userID, dishID uuid.UUID) error {
	if _, _, err := u.ownedDish(ctx, userID, dishID); err != nil {
		return err
	}
	return u.dishRepo.SoftDelete(ctx, dishID)
}

// AddOption attaches an option to an owned dish
func (u *MenuUsecase) AddOption(ctx context.Context, userID, dishID uuid.UUID, input *entities.CreateDishOptionInput) (*entities.DishOption, error) {
	_, dish, err := u.ownedDish(ctx, userID, dishID)
	if err != nil {
		return nil, err
	}

	modifier := decimal.Zero
	if input.PriceModifier != "" {
		modifier, err = decimal.NewFromString(input.PriceModifier)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
	}

	option := &entities.DishOption{
		ID:            utils.GenerateUUIDv7(),
		DishID:        dish.ID,
		Name:          input.Name,
		PriceModifier: modifier,
		IsRequired:    input.IsRequired,
		IsAvailable:   true,
		SortOrder:     input.SortOrder,
	}
	if input.IsAvailable != nil {
		option.IsAvailable = *input.IsAvailable
	}

	if err := u.dishRepo.CreateOption(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// UpdateOption edits an option of an owned dish
func (u *MenuUsecase) UpdateOption(ctx context.Context, userID, dishID, optionID uuid.UUID, input *entities.CreateDishOptionInput) (*entities.DishOption, error) {
	_, dish, err := u.ownedDish(ctx, userID, dishID)
	if err != nil {
		return nil, err
	}
	option := dish.OptionByID(optionID)
	if option == nil {
		return nil, domainerrors.ErrNotFound
	}

	if input.PriceModifier != "" {
		modifier, err := decimal.NewFromString(input.PriceModifier)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
		option.PriceModifier = modifier
	}
	option.Name = input.Name
	option.IsRequired = input.IsRequired
	option.SortOrder = input.SortOrder
	if input.IsAvailable != nil {
		option.IsAvailable = *input.IsAvailable
	}

	if err := u.dishRepo.UpdateOption(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// DeleteOption removes an option from an owned dish
func (u *MenuUsecase) DeleteOption(ctx context.Context, userID, dishID, optionID uuid.UUID) error {
	_, dish, err := u.ownedDish(ctx, userID, dishID)
	if err != nil {
		return err
	}
	if dish.OptionByID(optionID) == nil {
		return domainerrors.ErrNotFound
	}
	return u.dishRepo.DeleteOption(ctx, optionID)
}

// ownedCategory loads a category and checks restaurant ownership
func (u *MenuUsecase) ownedCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entities.Category, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	category, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.RestaurantID != restaurant.ID {
		return nil, domainerrors.ErrForbidden
	}
	return category, nil
}

// ownedDish loads a dish with options and checks restaurant ownership
func (u *MenuUsecase) ownedDish(ctx context.Context, userID, dishID uuid.UUID) (*entities.RestaurantProfile, *entities.Dish, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	dish, err := u.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, nil, err
	}
	if dish.RestaurantID != restaurant.ID {
		return nil, nil, domainerrors.ErrForbidden
	}
	return restaurant, dish, nil
}
