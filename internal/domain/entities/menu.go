package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups dishes on a restaurant's menu
type Category struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurantId"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	SortOrder    int        `json:"sortOrder"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`

	// Dishes is populated on public menu reads, available dishes only.
	Dishes []*Dish `json:"dishes,omitempty"`
}

// Dish represents a menu item. Price is the current price; orders snapshot it
// at creation time and never track later changes.
type Dish struct {
	ID           uuid.UUID       `json:"id"`
	RestaurantID uuid.UUID       `json:"restaurantId"`
	CategoryID   uuid.UUID       `json:"categoryId"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Ingredients  string          `json:"ingredients,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Weight       int             `json:"weight,omitempty"`
	CookingTime  int             `json:"cookingTime,omitempty"`
	SortOrder    int             `json:"sortOrder"`
	IsAvailable  bool            `json:"isAvailable"`
	IsPopular    bool            `json:"isPopular"`
	IsNew        bool            `json:"isNew"`
	IsSpicy      bool            `json:"isSpicy"`
	IsVegetarian bool            `json:"isVegetarian"`
	IsVegan      bool            `json:"isVegan"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	DeletedAt    *time.Time      `json:"-"`

	Options []*DishOption `json:"options,omitempty"`
}

// OptionByID returns the dish option with the given id, or nil
func (d *Dish) OptionByID(id uuid.UUID) *DishOption {
	for _, opt := range d.Options {
		if opt.ID == id {
			return opt
		}
	}
	return nil
}

// DishOption is an add-on for a dish (portion size, topping, sauce).
// PriceModifier may be negative.
type DishOption struct {
	ID            uuid.UUID       `json:"id"`
	DishID        uuid.UUID       `json:"dishId"`
	Name          string          `json:"name"`
	PriceModifier decimal.Decimal `json:"priceModifier"`
	IsRequired    bool            `json:"isRequired"`
	IsAvailable   bool            `json:"isAvailable"`
	SortOrder     int             `json:"sortOrder"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CreateCategoryInput represents input for creating a menu category
type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

// CreateDishInput represents input for creating a dish
type CreateDishInput struct {
	CategoryID   string `json:"categoryId" binding:"required,uuid"`
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Price        string `json:"price" binding:"required"`
	Weight       int    `json:"weight"`
	CookingTime  int    `json:"cookingTime"`
	SortOrder    int    `json:"sortOrder"`
	IsAvailable  *bool  `json:"isAvailable"`
	IsPopular    bool   `json:"isPopular"`
	IsNew        bool   `json:"isNew"`
	IsSpicy      bool   `json:"isSpicy"`
	IsVegetarian bool   `json:"isVegetarian"`
	IsVegan      bool   `json:"isVegan"`
}

// CreateDishOptionInput represents input for adding an option to a dish
type CreateDishOptionInput struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	PriceModifier string `json:"priceModifier"`
	IsRequired    bool   `json:"isRequired"`
	IsAvailable   *bool  `json:"isAvailable"`
	SortOrder     int    `json:"sortOrder"`
}
