package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	SortOrder    int       `gorm:"not null;default:0;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type Dish struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text"`
	Ingredients  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Weight       int             `gorm:"default:0"`
	CookingTime  int             `gorm:"default:0"`
	SortOrder    int             `gorm:"not null;default:0;index"`
	IsAvailable  bool            `gorm:"not null;default:true"`
	IsPopular    bool            `gorm:"not null;default:false"`
	IsNew        bool            `gorm:"not null;default:false"`
	IsSpicy      bool            `gorm:"not null;default:false"`
	IsVegetarian bool            `gorm:"not null;default:false"`
	IsVegan      bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Options []DishOption `gorm:"foreignKey:DishID"`
}

type DishOption struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	DishID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsRequired    bool            `gorm:"not null;default:false"`
	IsAvailable   bool            `gorm:"not null;default:true"`
	SortOrder     int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
