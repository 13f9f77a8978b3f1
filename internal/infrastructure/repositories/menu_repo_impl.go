package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"qrmenu.backend/internal/domain/entities"
	"qrmenu.backend/internal/infrastructure/models"
)

// CategoryRepositoryImpl implements CategoryRepository
type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepositoryImpl {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entities.Category) error {
	m := &models.Category{
		ID:           category.ID,
		RestaurantID: category.RestaurantID,
		Name:         category.Name,
		Description:  category.Description,
		SortOrder:    category.SortOrder,
		IsActive:     category.IsActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	category.ID = m.ID
	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *entities.Category) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
			"sort_order":  category.SortOrder,
			"is_active":   category.IsActive,
			"updated_at":  time.Now(),
		}))
}

func (r *CategoryRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}))
}

func (r *CategoryRepositoryImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, activeOnly bool) ([]*entities.Category, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var ms []models.Category
	if err := query.Order("sort_order ASC, name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(ms))
	for _, m := range ms {
		model := m
		categories = append(categories, r.toEntity(&model))
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) toEntity(m *models.Category) *entities.Category {
	c := &entities.Category{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		SortOrder:    m.SortOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		c.DeletedAt = &t
	}
	return c
}

// DishRepositoryImpl implements DishRepository
type DishRepositoryImpl struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepositoryImpl {
	return &DishRepositoryImpl{db: db}
}

func (r *DishRepositoryImpl) Create(ctx context.Context, dish *entities.Dish) error {
	m := &models.Dish{
		ID:           dish.ID,
		RestaurantID: dish.RestaurantID,
		CategoryID:   dish.CategoryID,
		Name:         dish.Name,
		Description:  dish.Description,
		Ingredients:  dish.Ingredients,
		Price:        dish.Price,
		Weight:       dish.Weight,
		CookingTime:  dish.CookingTime,
		SortOrder:    dish.SortOrder,
		IsAvailable:  dish.IsAvailable,
		IsPopular:    dish.IsPopular,
		IsNew:        dish.IsNew,
		IsSpicy:      dish.IsSpicy,
		IsVegetarian: dish.IsVegetarian,
		IsVegan:      dish.IsVegan,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	dish.ID = m.ID
	return nil
}

func (r *DishRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Dish, error) {
	var m models.Dish
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *DishRepositoryImpl) Update(ctx context.Context, dish *entities.Dish) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.Dish{}).
		Where("id = ?", dish.ID).
		Updates(map[string]interface{}{
			"category_id":   dish.CategoryID,
			"name":          dish.Name,
			"description":   dish.Description,
			"ingredients":   dish.Ingredients,
			"price":         dish.Price,
			"weight":        dish.Weight,
			"cooking_time":  dish.CookingTime,
			"sort_order":    dish.SortOrder,
			"is_available":  dish.IsAvailable,
			"is_popular":    dish.IsPopular,
			"is_new":        dish.IsNew,
			"is_spicy":      dish.IsSpicy,
			"is_vegetarian": dish.IsVegetarian,
			"is_vegan":      dish.IsVegan,
			"updated_at":    time.Now(),
		}))
}

func (r *DishRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Dish{}))
}

func (r *DishRepositoryImpl) ListByCategory(ctx context.Context, categoryID uuid.UUID, availableOnly bool) ([]*entities.Dish, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Where("category_id = ?", categoryID)
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	return r.list(query)
}

func (r *DishRepositoryImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, availableOnly bool) ([]*entities.Dish, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	return r.list(query)
}

func (r *DishRepositoryImpl) list(query *gorm.DB) ([]*entities.Dish, error) {
	var ms []models.Dish
	if err := query.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("sort_order ASC, name ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	dishes := make([]*entities.Dish, 0, len(ms))
	for _, m := range ms {
		model := m
		dishes = append(dishes, r.toEntity(&model))
	}
	return dishes, nil
}

func (r *DishRepositoryImpl) CreateOption(ctx context.Context, option *entities.DishOption) error {
	m := &models.DishOption{
		ID:            option.ID,
		DishID:        option.DishID,
		Name:          option.Name,
		PriceModifier: option.PriceModifier,
		IsRequired:    option.IsRequired,
		IsAvailable:   option.IsAvailable,
		SortOrder:     option.SortOrder,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	option.ID = m.ID
	return nil
}

func (r *DishRepositoryImpl) UpdateOption(ctx context.Context, option *entities.DishOption) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.DishOption{}).
		Where("id = ?", option.ID).
		Updates(map[string]interface{}{
			"name":           option.Name,
			"price_modifier": option.PriceModifier,
			"is_required":    option.IsRequired,
			"is_available":   option.IsAvailable,
			"sort_order":     option.SortOrder,
			"updated_at":     time.Now(),
		}))
}

func (r *DishRepositoryImpl) DeleteOption(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.DishOption{}))
}

func (r *DishRepositoryImpl) toEntity(m *models.Dish) *entities.Dish {
	d := &entities.Dish{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Description:  m.Description,
		Ingredients:  m.Ingredients,
		Price:        m.Price,
		Weight:       m.Weight,
		CookingTime:  m.CookingTime,
		SortOrder:    m.SortOrder,
		IsAvailable:  m.IsAvailable,
		IsPopular:    m.IsPopular,
		IsNew:        m.IsNew,
		IsSpicy:      m.IsSpicy,
		IsVegetarian: m.IsVegetarian,
		IsVegan:      m.IsVegan,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		d.DeletedAt = &t
	}
	for _, opt := range m.Options {
		d.Options = append(d.Options, &entities.DishOption{
			ID:            opt.ID,
			DishID:        opt.DishID,
			Name:          opt.Name,
			PriceModifier: opt.PriceModifier,
			IsRequired:    opt.IsRequired,
			IsAvailable:   opt.IsAvailable,
			SortOrder:     opt.SortOrder,
			CreatedAt:     opt.CreatedAt,
			UpdatedAt:     opt.UpdatedAt,
		})
	}
	return d
}
